// Пакет uploadclient — отправка CSV на сервер анализа (POST /upload)
// с предварительной проверкой и индикацией времени ожидания.
package uploadclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Gunvolt24/csvgate/internal/domain"
	"github.com/Gunvolt24/csvgate/internal/ports"
	"github.com/Gunvolt24/csvgate/pkg/ctxmeta"
	"github.com/Gunvolt24/csvgate/pkg/elapsed"
	"github.com/Gunvolt24/csvgate/pkg/logger"
	"github.com/Gunvolt24/csvgate/pkg/preflight"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	DefaultMaxSize   int64 = 50 << 20
	DefaultAreaRange       = "all"

	uploadPath     = "/upload"
	fieldFile      = "file"
	fieldAreaRange = "area_range"
	maxErrorBody   = 64 << 10
)

// AreaRanges — допустимые значения поля area_range формы загрузки.
var AreaRanges = []string{"all", "le60", "gt60le85", "gt85le102", "gt102le135", "gt135"}

var (
	ErrNotCSV           = errors.New("file must have .csv extension")
	ErrTooLarge         = errors.New("file exceeds max upload size")
	ErrUnknownAreaRange = errors.New("unknown area range")
)

// RejectedError — файл не прошёл предварительную проверку; на сервер ничего не отправлялось.
type RejectedError struct {
	Outcome domain.Outcome
}

func (e *RejectedError) Error() string { return "preflight rejected: " + e.Outcome.Reason }
func (e *RejectedError) Unwrap() error { return e.Outcome.Err() }

// StatusError — сервер ответил не 2xx/3xx. Message — поле "error" JSON-ответа, если оно было.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upload failed: status %d", e.Code)
	}
	return fmt.Sprintf("upload failed: status %d: %s", e.Code, e.Message)
}

// Result — итог успешной загрузки.
type Result struct {
	StatusCode int
	Location   string // адрес страницы результатов при ответе-редиректе
	Elapsed    time.Duration
}

type Client struct {
	baseURL      string
	http         *http.Client
	validator    *preflight.Validator
	maxSize      int64
	tickInterval time.Duration
	progress     io.Writer
	log          ports.Logger
}

type Option func(*Client)

// WithHTTPClient — собственный *http.Client (редиректы и транспорт остаются на его усмотрение).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithMaxSize — лимит размера файла; <= 0 отключает проверку.
func WithMaxSize(n int64) Option { return func(c *Client) { c.maxSize = n } }

func WithTickInterval(d time.Duration) Option { return func(c *Client) { c.tickInterval = d } }

// WithProgress — куда печатать "Processing... Ns" во время ожидания ответа.
func WithProgress(w io.Writer) Option { return func(c *Client) { c.progress = w } }

func WithLogger(log ports.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New — клиент сервера анализа по базовому адресу (например, http://localhost:5000).
// По умолчанию ответ-редирект не раскрывается: он и есть признак успешной загрузки.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		validator:    preflight.NewValidator(),
		maxSize:      DefaultMaxSize,
		tickInterval: time.Second,
		log:          logger.Wrap(zap.NewNop()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload — проверяет и отправляет файл. Пустой areaRange означает "all".
// Отклонённый предварительной проверкой файл на сервер не отправляется.
// Файл открывается заново для проверки и для отправки: если его изменят между
// этими шагами, на сервер уйдёт непроверенное содержимое.
func (c *Client) Upload(ctx context.Context, path, areaRange string) (*Result, error) {
	if !strings.HasSuffix(path, ".csv") {
		return nil, ErrNotCSV
	}
	if areaRange == "" {
		areaRange = DefaultAreaRange
	}
	if !slices.Contains(AreaRanges, areaRange) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAreaRange, areaRange)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if c.maxSize > 0 && info.Size() > c.maxSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrTooLarge, info.Size(), c.maxSize)
	}

	ctx = ctxmeta.WithFileName(ctx, filepath.Base(path))

	outcome, err := c.validator.Validate(ctx, domain.FileCandidate{Path: path})
	if err != nil {
		return nil, err
	}
	if !outcome.IsAccepted() {
		c.log.Warnf(ctx, "preflight rejected: %s", outcome.Reason)
		return nil, &RejectedError{Outcome: outcome}
	}

	return c.post(ctx, path, areaRange)
}

func (c *Client) post(ctx context.Context, path, areaRange string) (*Result, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		_ = pw.CloseWithError(writeForm(mw, path, areaRange))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, pr)
	if err != nil {
		_ = pr.Close()
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	timer := elapsed.NewTimer(c.tickInterval, func(n int) {
		if c.progress != nil {
			fmt.Fprintf(c.progress, "\rProcessing... %ds", n)
		}
	})

	c.log.Infof(ctx, "uploading to %s (area_range=%s)", req.URL, areaRange)
	timer.Start()
	resp, err := c.http.Do(req)
	took := timer.Stop()
	if c.progress != nil {
		fmt.Fprintln(c.progress)
	}
	// Do закрывает тело запроса; pipe-писатель завершится с ошибкой записи.
	if err != nil {
		return nil, fmt.Errorf("post upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest || resp.StatusCode < http.StatusOK {
		serr := &StatusError{Code: resp.StatusCode, Message: errorMessage(resp.Body)}
		c.log.Warnf(ctx, "upload failed after %s: %v", took, serr)
		return nil, serr
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	c.log.Infof(ctx, "upload done status=%d in %s", resp.StatusCode, took)
	return &Result{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
		Elapsed:    took,
	}, nil
}

func writeForm(mw *multipart.Writer, path, areaRange string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile(fieldFile, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := mw.WriteField(fieldAreaRange, areaRange); err != nil {
		return fmt.Errorf("write area_range: %w", err)
	}
	return mw.Close()
}

// errorMessage — поле "error" JSON-ответа; иначе первые байты тела как текст.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
