package trip

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgen/internal/ai"
)

// stubProvider scripts one provider's behavior and records what it was asked.
type stubProvider struct {
	name   string
	text   string
	err    error
	calls  int
	prompt ai.Prompt
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(_ context.Context, prompt ai.Prompt) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.text, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrchestratorPrimarySucceeds(t *testing.T) {
	primary := &stubProvider{name: "gemini", text: `{"ok": true}`}
	secondary := &stubProvider{name: "openai"}
	orch := NewOrchestrator(primary, secondary, discardLogger())

	text, genErr := orch.Generate(context.Background(), ai.Prompt{System: "sys", User: "usr"})
	require.Nil(t, genErr)
	assert.Equal(t, `{"ok": true}`, text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls, "secondary must not be called on primary success")
}

func TestOrchestratorFallbackSucceeds(t *testing.T) {
	primary := &stubProvider{name: "gemini", err: errors.New("the model is overloaded")}
	secondary := &stubProvider{name: "openai", text: `{"ok": true}`}
	orch := NewOrchestrator(primary, secondary, discardLogger())

	text, genErr := orch.Generate(context.Background(), ai.Prompt{System: "sys", User: "usr"})
	require.Nil(t, genErr)
	assert.Equal(t, `{"ok": true}`, text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
	// The fallback hop restates the output constraints.
	assert.True(t, strings.HasPrefix(secondary.prompt.System, "IMPORTANT:"))
	assert.Contains(t, secondary.prompt.System, "sys")
	assert.Equal(t, "usr", secondary.prompt.User)
}

func TestOrchestratorBothFail(t *testing.T) {
	primary := &stubProvider{name: "gemini", err: &ai.ProviderError{Provider: "gemini", StatusCode: 429, Message: "quota exceeded"}}
	secondary := &stubProvider{name: "openai", err: &ai.ProviderError{Provider: "openai", StatusCode: 503, Message: "overloaded"}}
	orch := NewOrchestrator(primary, secondary, discardLogger())

	_, genErr := orch.Generate(context.Background(), ai.Prompt{})
	require.NotNil(t, genErr)
	assert.Equal(t, KindAllProvidersExhausted, genErr.Kind)
	assert.Equal(t, "gemini", genErr.Provider, "primary failure is the canonical one")
	assert.Equal(t, ReasonRateLimit, genErr.Reason)
	assert.True(t, genErr.FallbackAttempted)
	// The secondary's failure is preserved as auxiliary detail.
	require.Len(t, genErr.Details, 1)
	assert.Contains(t, genErr.Details[0], "fallback openai")
	assert.Contains(t, genErr.Details[0], "overloaded")
}

func TestOrchestratorFatalPrimarySkipsFallback(t *testing.T) {
	primary := &stubProvider{name: "gemini", err: errors.New("unexpected payload shape")}
	secondary := &stubProvider{name: "openai", text: `{"ok": true}`}
	orch := NewOrchestrator(primary, secondary, discardLogger())

	_, genErr := orch.Generate(context.Background(), ai.Prompt{})
	require.NotNil(t, genErr)
	assert.Equal(t, KindProviderFailed, genErr.Kind)
	assert.False(t, genErr.FallbackAttempted)
	assert.Equal(t, 0, secondary.calls, "fatal failures must not trigger the fallback hop")
}

func TestOrchestratorRetryableWithoutSecondary(t *testing.T) {
	primary := &stubProvider{name: "gemini", err: &ai.ProviderError{Provider: "gemini", StatusCode: 503, Message: "overloaded"}}
	orch := NewOrchestrator(primary, nil, discardLogger())

	_, genErr := orch.Generate(context.Background(), ai.Prompt{})
	require.NotNil(t, genErr)
	assert.Equal(t, KindAllProvidersExhausted, genErr.Kind)
	assert.Equal(t, ReasonOverloaded, genErr.Reason)
	assert.False(t, genErr.FallbackAttempted)
}

func TestOrchestratorEmptyCompletionIsRetryable(t *testing.T) {
	primary := &stubProvider{name: "gemini", text: "   \n"}
	secondary := &stubProvider{name: "openai", text: `{"ok": true}`}
	orch := NewOrchestrator(primary, secondary, discardLogger())

	text, genErr := orch.Generate(context.Background(), ai.Prompt{})
	require.Nil(t, genErr)
	assert.Equal(t, `{"ok": true}`, text)
	assert.Equal(t, 1, secondary.calls, "blank output must fall through to the secondary")
}
