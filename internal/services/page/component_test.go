package page

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestViewRendersGreetingParagraph(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<p>Hello, friend.</p>", render(t, New().View()))
}

func TestViewIsIdempotent(t *testing.T) {
	t.Parallel()

	m := New()
	first := render(t, m.View())
	for i := 0; i < 50; i++ {
		require.Equal(t, first, render(t, m.View()))
	}
}

func TestUpdateAlwaysRequestsRedrawWithoutChangingOutput(t *testing.T) {
	t.Parallel()

	m := New()
	before := render(t, m.View())
	for i := 0; i < 10; i++ {
		require.True(t, m.Update(Message{}))
		require.Equal(t, StateRendered, m.State())
		require.Equal(t, before, render(t, m.View()))
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rendered", StateRendered.String())
	assert.Equal(t, "unknown", State(7).String())
}

func TestViewPropagatesWriterErrors(t *testing.T) {
	t.Parallel()

	err := New().View().Render(context.Background(), failingWriter{})
	require.ErrorIs(t, err, errWrite)
}

func TestMountCountsRedraws(t *testing.T) {
	t.Parallel()

	app := Mount(nil)
	assert.Equal(t, 0, app.Redraws())
	for i := 0; i < 3; i++ {
		assert.True(t, app.Send(Message{}))
	}
	assert.Equal(t, 3, app.Redraws())
	assert.Equal(t, StateRendered, app.State())
	assert.Equal(t, "<p>Hello, friend.</p>", render(t, app.View()))
}

func TestMountSendIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	app := Mount(New())
	const senders = 20
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.Send(Message{})
			_ = app.View()
		}()
	}
	wg.Wait()
	assert.Equal(t, senders, app.Redraws())
}

func TestDocumentWrapsBodyAndEscapesMetadata(t *testing.T) {
	t.Parallel()

	got := render(t, Document(`<Hi & "you">`, "en", New().View()))
	assert.True(t, strings.HasPrefix(got, "<!doctype html>"))
	assert.Contains(t, got, `<html lang="en">`)
	assert.Contains(t, got, "<title>&lt;Hi &amp; &#34;you&#34;&gt;</title>")
	assert.Contains(t, got, "<body><p>Hello, friend.</p></body>")
}

func TestDocumentAllowsEmptyBody(t *testing.T) {
	t.Parallel()

	got := render(t, Document("Hello", "en", nil))
	assert.Contains(t, got, "<body></body>")
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}
