package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/period"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :( Type /help to see the commands"
	helloMessage          = "Hello! I am your expense tracker 💸"
	loveToTalkMessage     = "I only understand commands. Type /help to see them"
	noExpensesMessage     = "No expenses for %s"

	createdMessage  = "Expense created successfully!"
	updatedMessage  = "Expense updated successfully!"
	deletedMessage  = "Expense deleted successfully!"
	resetMessage    = "All data has been reset!"
	notSavedMessage = "The change is kept for this session but could not be saved to storage."

	addUsageMessage    = "Usage: /add <amount> <category>"
	editUsageMessage   = "Usage: /edit <id> <amount>"
	deleteUsageMessage = "Usage: /delete <id>"
)

const helpMessage = `/add <amount> <category> - record an expense
/edit <id> <amount> - change the amount of an expense
/delete <id> - remove an expense
/list [day|month|year] [date] - expenses of a period
/total [day|month|year] [date] - total of a period
/chart [day|month|year] [date] - daily totals against the previous period
/report [day|month|year] [date] - totals by category
/categories - known categories
/reset - remove all expenses
Dates are YYYY-MM-DD, YYYY-MM or YYYY; the default is today.`

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	addCommand        = "/add"
	editCommand       = "/edit"
	deleteCommand     = "/delete"
	listCommand       = "/list"
	totalCommand      = "/total"
	chartCommand      = "/chart"
	reportCommand     = "/report"
	categoriesCommand = "/categories"
	resetCommand      = "/reset"
)

var commandNames = map[string]struct{}{
	startCommand: {}, helpCommand: {}, addCommand: {}, editCommand: {}, deleteCommand: {},
	listCommand: {}, totalCommand: {}, chartCommand: {}, reportCommand: {},
	categoriesCommand: {}, resetCommand: {},
}

type recordStore interface {
	Create(ctx context.Context, amount float64, category string) (expense.Record, error)
	UpdateAmount(ctx context.Context, id int64, amount float64) error
	Delete(ctx context.Context, id int64) error
	ResetAll(ctx context.Context) error
}

type reportGenerator interface {
	Generate(ctx context.Context, g period.Granularity, anchor time.Time) (*reports.Report, error)
}

type config interface {
	Location() *time.Location
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	store       recordStore
	generator   reportGenerator
	location    *time.Location
	clock       func() time.Time
}

func newHandler(store recordStore, generator reportGenerator, config config) *HandlerService {
	res := &HandlerService{
		store:     store,
		generator: generator,
		location:  config.Location(),
		clock:     time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[addCommand] = s.handleAdd
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[listCommand] = s.handleList
	m[totalCommand] = s.handleTotal
	m[chartCommand] = s.handleChart
	m[reportCommand] = s.handleReport
	m[categoriesCommand] = s.handleCategories
	m[resetCommand] = s.handleReset

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

func (s *HandlerService) today() time.Time {
	return s.clock().In(s.location)
}

// reply turns core errors into user replies. Invalid input and unknown ids are
// answered without an error; storage failures are answered and returned.
func reply(ok string, err error) (string, error) {
	if err == nil {
		return ok, nil
	}

	var (
		validationErr *customerr.ValidationError
		notFoundErr   *customerr.NotFoundError
		persistErr    *customerr.PersistError
	)
	switch {
	case errors.As(err, &validationErr):
		return capitalize(validationErr.Error()), nil
	case errors.As(err, &notFoundErr):
		return fmt.Sprintf("Expense #%d not found", notFoundErr.ID), nil
	case errors.As(err, &persistErr):
		return ok + "\n" + notSavedMessage, err
	}
	return "", err
}

func (s *HandlerService) handleStart(_ context.Context, _ string) (string, error) {
	return helloMessage + "\n\n" + helpMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return addUsageMessage, nil
	}
	amount, err := parseAmount(args[0])
	if err != nil {
		return reply("", err)
	}

	rec, err := s.store.Create(ctx, amount, canonicalCategory(args[1]))
	return reply(createdMessage+"\n"+formatRecord(rec), errors.Wrap(err, "handle add"))
}

func (s *HandlerService) handleEdit(ctx context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return editUsageMessage, nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return reply("", err)
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return reply("", err)
	}

	err = s.store.UpdateAmount(ctx, id, amount)
	return reply(updatedMessage, errors.Wrap(err, "handle edit"))
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 1 {
		return deleteUsageMessage, nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return reply("", err)
	}

	err = s.store.Delete(ctx, id)
	return reply(deletedMessage, errors.Wrap(err, "handle delete"))
}

func (s *HandlerService) handleReset(ctx context.Context, _ string) (string, error) {
	err := s.store.ResetAll(ctx)
	return reply(resetMessage, errors.Wrap(err, "handle reset"))
}

func (s *HandlerService) report(ctx context.Context, arg string) (*reports.Report, string, error) {
	g, anchor, err := parseWindowArgs(arg, s.today())
	if err != nil {
		return nil, "", err
	}
	report, err := s.generator.Generate(ctx, g, anchor)
	if err != nil {
		return nil, "", errors.Wrap(err, "generate report")
	}
	return report, formatWindowTitle(g, anchor), nil
}

func (s *HandlerService) handleList(ctx context.Context, arg string) (string, error) {
	report, title, err := s.report(ctx, arg)
	if err != nil {
		return reply("", err)
	}
	if len(report.Records) == 0 {
		return fmt.Sprintf(noExpensesMessage, title), nil
	}

	lines := make([]string, 0, len(report.Records)+1)
	lines = append(lines, fmt.Sprintf("Expenses for %s:", title))
	for _, rec := range report.Records {
		lines = append(lines, formatRecord(rec))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleTotal(ctx context.Context, arg string) (string, error) {
	report, title, err := s.report(ctx, arg)
	if err != nil {
		return reply("", err)
	}
	return fmt.Sprintf("Total for %s: %s", title, report.Total.StringFixed(2)), nil
}

func (s *HandlerService) handleChart(ctx context.Context, arg string) (string, error) {
	report, title, err := s.report(ctx, arg)
	if err != nil {
		return reply("", err)
	}
	if len(report.Series) == 0 {
		return fmt.Sprintf(noExpensesMessage, title), nil
	}

	lines := make([]string, 0, len(report.Series)+1)
	lines = append(lines, fmt.Sprintf("%s against the previous period:", title))
	for _, p := range report.Series {
		lines = append(lines, fmt.Sprintf("%s  current %s  previous %s",
			p.Date, formatAmount(p.Current), formatAmount(p.Previous)))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string) (string, error) {
	report, title, err := s.report(ctx, arg)
	if err != nil {
		return reply("", err)
	}
	if len(report.Records) == 0 {
		return fmt.Sprintf(noExpensesMessage, title), nil
	}
	return formatReport(title, report), nil
}

func formatReport(title string, report *reports.Report) string {
	res := make([]string, 0, len(report.ByCategory)+4)
	res = append(res, fmt.Sprintf("Report for %s:", title))
	for _, rec := range report.ByCategory {
		res = append(res, fmt.Sprintf("%s: %s", rec.Category, rec.Amount.StringFixed(2)))
	}
	res = append(res, "",
		fmt.Sprintf("Total: %s", report.Total.StringFixed(2)),
		fmt.Sprintf("Previous period: %s", report.PreviousTotal.StringFixed(2)))
	return strings.Join(res, "\n")
}

func (s *HandlerService) handleCategories(_ context.Context, _ string) (string, error) {
	return strings.Join(expense.Categories, "\n"), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string) (string, error) {
	return loveToTalkMessage, nil
}
