package words

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/backsoul/hangman/pkg/models"
	"github.com/valyala/fasthttp"
)

const defaultAPITimeout = 5 * time.Second

// APISource obtiene palabras de un servicio HTTP que responde un arreglo JSON,
// por ejemplo ["apple"]. Solo sirve palabras sueltas.
type APISource struct {
	client  *fasthttp.Client
	url     string
	length  int
	timeout time.Duration
}

// NewAPISource crea la fuente; client puede ser nil
func NewAPISource(url string, length int, timeout time.Duration, client *fasthttp.Client) *APISource {
	if client == nil {
		client = &fasthttp.Client{Name: "hangman"}
	}
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}
	return &APISource{
		client:  client,
		url:     url,
		length:  length,
		timeout: timeout,
	}
}

// RandomWord pide una palabra al servicio
func (s *APISource) RandomWord(ctx context.Context, category models.Category) (string, error) {
	if category != models.CategoryWord {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCategory, category)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	if s.length > 0 {
		req.URI().QueryArgs().SetUint("length", s.length)
	}

	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		return "", fmt.Errorf("error consultando %s: %w", s.url, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return "", fmt.Errorf("respuesta inesperada de %s: %d", s.url, resp.StatusCode())
	}

	var list []string
	if err := json.Unmarshal(resp.Body(), &list); err != nil {
		return "", fmt.Errorf("error parsing respuesta: %w", err)
	}

	for _, entry := range list {
		entry = Normalize(entry)
		if Valid(entry) {
			return entry, nil
		}
	}

	return "", ErrNoWord
}
