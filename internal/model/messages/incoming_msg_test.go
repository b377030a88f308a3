package messages

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/calendar"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/period"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/messages/mock"
	"max.ks1230/expense-tracker/internal/model/records"
	recmock "max.ks1230/expense-tracker/internal/model/records/mock"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/window"
)

var now = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

type sentMessages []string

func (s *sentMessages) last() string {
	if len(*s) == 0 {
		return ""
	}
	return (*s)[len(*s)-1]
}

type recordsBackend interface {
	Load(context.Context) ([]expense.Record, error)
	Save(context.Context, []expense.Record) error
	Clear(context.Context) error
}

func newConfigMock(m *minimock.Controller) *mock.ConfigMock {
	return mock.NewConfigMock(m).LocationMock.Return(time.UTC)
}

func newTestService(t *testing.T, m *minimock.Controller, recStorage recordsBackend) (*Service, *sentMessages, *records.Store) {
	t.Helper()

	store, err := records.Open(context.Background(), recStorage, records.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	generator := reports.NewGenerator(store, window.NewSelector(calendar.New()))

	sent := &sentMessages{}
	sender := mock.NewMessageSenderMock(m).
		SendMessageMock.
		Inspect(func(text string) {
			*sent = append(*sent, text)
		}).
		Return(nil)

	service := NewService(sender, store, generator, newConfigMock(m))
	service.handler.(*HandlerService).clock = func() time.Time { return now }
	return service, sent, store
}

func newMemService(t *testing.T) (*Service, *sentMessages, *records.Store) {
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)
	return newTestService(t, m, storage.NewRecordStorage(storage.NewInMemSlot(), "expenses", time.UTC))
}

func send(t *testing.T, s *Service, text string) {
	t.Helper()
	require.NoError(t, s.HandleIncomingMessage(context.Background(), Message{Text: text}))
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	service, sender, _ := newMemService(t)

	send(t, service, "/start")

	assert.Contains(t, sender.last(), helloMessage)
	assert.Contains(t, sender.last(), "/add <amount> <category>")
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	store := mock.NewRecordStoreMock(m)
	generator := mock.NewReportGeneratorMock(m)

	sender.SendMessageMock.
		Expect(dontUnderstandMessage).
		Return(nil)

	model := NewService(sender, store, generator, newConfigMock(m))
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/none"})

	assert.NoError(t, err)
}

func Test_OnPlainText_ShouldAskForCommand(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(loveToTalkMessage).
		Return(nil)

	model := NewService(sender, mock.NewRecordStoreMock(m), mock.NewReportGeneratorMock(m), newConfigMock(m))
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "hello there"})

	assert.NoError(t, err)
}

func Test_OnAddCommand_ShouldPassCanonicalCategoryToStore(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	store := mock.NewRecordStoreMock(m)

	rec := expense.Record{ID: 42, Amount: 12.5, Category: expense.Transportation, Date: now}
	store.CreateMock.
		Inspect(func(_ context.Context, amount float64, category string) {
			assert.Equal(m, 12.5, amount)
			assert.Equal(m, expense.Transportation, category)
		}).
		Return(rec, nil)
	sender.SendMessageMock.
		Expect(createdMessage + "\n#42  2024-03-15 10:00  Transportation  12.50").
		Return(nil)

	model := NewService(sender, store, mock.NewReportGeneratorMock(m), newConfigMock(m))
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/add 12.5 TRANSPORTATION"})

	assert.NoError(t, err)
}

func Test_OnTotalCommand_ShouldAskGeneratorForAnchoredWindow(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	generator := mock.NewReportGeneratorMock(m)

	generator.GenerateMock.
		Inspect(func(_ context.Context, g period.Granularity, anchor time.Time) {
			assert.Equal(m, period.Month, g)
			assert.Equal(m, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), anchor)
		}).
		Return(&reports.Report{Total: decimal.RequireFromString("12.35")}, nil)
	sender.SendMessageMock.
		Expect("Total for February 2024: 12.35").
		Return(nil)

	model := NewService(sender, mock.NewRecordStoreMock(m), generator, newConfigMock(m))
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/total month 2024-02"})

	assert.NoError(t, err)
}

func Test_OnReportCommand_GeneratorFailureShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	generator := mock.NewReportGeneratorMock(m)

	generator.GenerateMock.Return(nil, errors.New("source unavailable"))
	sender.SendMessageMock.
		Expect("Sorry, something wrong happened...\n").
		Return(nil)

	model := NewService(sender, mock.NewRecordStoreMock(m), generator, newConfigMock(m))
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/report"})

	assert.Error(t, err)
}

func Test_OnStorageFailure_ShouldApologizeAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	backend := recmock.NewRecordsStorageMock(m).
		LoadMock.Return(nil, nil).
		SaveMock.Return(errors.New("quota exceeded"))
	service, sender, store := newTestService(t, m, backend)

	err := service.HandleIncomingMessage(context.Background(), Message{Text: "/add 5 Food"})

	var persistErr *customerr.PersistError
	require.True(t, errors.As(err, &persistErr))
	assert.Contains(t, sender.last(), "Sorry, something wrong happened...")
	assert.Contains(t, sender.last(), notSavedMessage)
	assert.Equal(t, 1, store.Len())
}
