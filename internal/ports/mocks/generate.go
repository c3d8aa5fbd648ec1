//go:generate mockgen -source=../validator.go         -destination=./mock_validator.go         -package=mocks
//go:generate mockgen -source=../outcome_cache.go     -destination=./mock_outcome_cache.go     -package=mocks
//go:generate mockgen -source=../outcome_publisher.go -destination=./mock_outcome_publisher.go -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks

package mocks
