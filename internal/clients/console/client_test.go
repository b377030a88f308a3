package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/calendar"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/records"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/window"
)

type testConfig struct{}

func (testConfig) CommandTimeout() time.Duration { return time.Second }
func (testConfig) Location() *time.Location      { return time.UTC }

func Test_ListenUpdates_ShouldAnswerEveryLineUntilEOF(t *testing.T) {
	ctx := context.Background()
	store, err := records.Open(ctx, storage.NewRecordStorage(storage.NewInMemSlot(), "expenses", time.UTC))
	require.NoError(t, err)
	generator := reports.NewGenerator(store, window.NewSelector(calendar.New()))

	in := strings.NewReader("/add 4 Food\n\n/add 6 Utilities\n/total\n")
	out := &bytes.Buffer{}
	client := New(in, out, testConfig{})
	service := messages.NewService(client, store, generator, testConfig{})

	client.ListenUpdates(ctx, service)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, strings.Count(out.String(), "Expense created successfully!"))
	assert.Contains(t, out.String(), ": 10.00")
}

func Test_ListenUpdates_ShouldStopOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		New(blockingReader{}, &bytes.Buffer{}, testConfig{}).ListenUpdates(ctx, nil)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("client did not stop")
	}
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}
