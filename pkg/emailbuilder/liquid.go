package emailbuilder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osteele/liquid"
)

// Limits for Liquid template rendering of untrusted documents.
const (
	DefaultRenderTimeout   = 5 * time.Second
	DefaultMaxTemplateSize = 256 * 1024 // 256KB of compiled markup
)

// SecureLiquidEngine wraps the Liquid engine with size and timeout limits so
// a pathological template cannot stall compilation.
type SecureLiquidEngine struct {
	timeout time.Duration
	maxSize int
	engine  *liquid.Engine
}

func NewSecureLiquidEngine() *SecureLiquidEngine {
	return &SecureLiquidEngine{
		timeout: DefaultRenderTimeout,
		maxSize: DefaultMaxTemplateSize,
		engine:  liquid.NewEngine(),
	}
}

func NewSecureLiquidEngineWithOptions(timeout time.Duration, maxSize int) *SecureLiquidEngine {
	return &SecureLiquidEngine{
		timeout: timeout,
		maxSize: maxSize,
		engine:  liquid.NewEngine(),
	}
}

// Render renders Liquid markup with the given data. Content without Liquid
// markers is returned unchanged without engaging the engine.
func (s *SecureLiquidEngine) Render(content string, data map[string]interface{}) (string, error) {
	if !strings.Contains(content, "{{") && !strings.Contains(content, "{%") {
		return content, nil
	}
	if len(content) > s.maxSize {
		return "", fmt.Errorf("template size (%d bytes) exceeds maximum allowed size (%d bytes)", len(content), s.maxSize)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resultChan := make(chan string, 1)
	errorChan := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				errorChan <- fmt.Errorf("liquid rendering panicked: %v", r)
			}
		}()
		rendered, err := s.engine.ParseAndRenderString(content, data)
		if err != nil {
			errorChan <- err
			return
		}
		resultChan <- rendered
	}()

	select {
	case rendered := <-resultChan:
		return rendered, nil
	case err := <-errorChan:
		return "", fmt.Errorf("liquid rendering error: %w", err)
	case <-ctx.Done():
		return "", fmt.Errorf("liquid rendering timed out after %s", s.timeout)
	}
}
