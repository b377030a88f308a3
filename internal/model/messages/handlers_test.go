package messages

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/period"
)

func Test_OnAddCommand_ShouldCreateExpense(t *testing.T) {
	service, sender, store := newMemService(t)

	send(t, service, "/add 12.5 food")

	require.Equal(t, 1, store.Len())
	rec := store.List()[0]
	assert.Equal(t, expense.Food, rec.Category)
	assert.Equal(t, 12.5, rec.Amount)
	assert.Equal(t,
		fmt.Sprintf("%s\n#%d  2024-03-15 10:00  Food  12.50", createdMessage, rec.ID),
		sender.last())
}

func Test_OnAddCommand_InvalidInputShouldNotCreate(t *testing.T) {
	cases := map[string]string{
		"/add":              addUsageMessage,
		"/add 5":            addUsageMessage,
		"/add five Food":    `Invalid amount: "five" is not a number`,
		"/add 0 Food":       "Invalid amount: must be greater than 0",
		"/add -2 Food":      "Invalid amount: must be greater than 0",
		"/add 3 Groceries":  `Invalid category: unknown category "Groceries"`,
		"/add 3 Food extra": addUsageMessage,
	}
	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			service, sender, store := newMemService(t)

			send(t, service, text)

			assert.Equal(t, want, sender.last())
			assert.Equal(t, 0, store.Len())
		})
	}
}

func Test_OnEditCommand(t *testing.T) {
	service, sender, store := newMemService(t)
	send(t, service, "/add 10 Shopping")
	id := store.List()[0].ID

	send(t, service, fmt.Sprintf("/edit %d 7.25", id))
	assert.Equal(t, updatedMessage, sender.last())
	rec, _ := store.Get(id)
	assert.Equal(t, 7.25, rec.Amount)

	send(t, service, fmt.Sprintf("/edit #%d 0", id))
	assert.Equal(t, "Invalid amount: must be greater than 0", sender.last())

	send(t, service, "/edit 1 5")
	assert.Equal(t, "Expense #1 not found", sender.last())

	send(t, service, "/edit abc 5")
	assert.Equal(t, `Invalid id: "abc" is not an expense id`, sender.last())
}

func Test_OnDeleteCommand_SecondDeleteShouldReportNotFound(t *testing.T) {
	service, sender, store := newMemService(t)
	send(t, service, "/add 10 Drugs")
	id := store.List()[0].ID

	send(t, service, fmt.Sprintf("/delete %d", id))
	assert.Equal(t, deletedMessage, sender.last())
	assert.Equal(t, 0, store.Len())

	send(t, service, fmt.Sprintf("/delete %d", id))
	assert.Equal(t, fmt.Sprintf("Expense #%d not found", id), sender.last())
}

func Test_OnResetCommand_ShouldEmptyStore(t *testing.T) {
	service, sender, store := newMemService(t)
	send(t, service, "/add 1 Food")
	send(t, service, "/add 2 Airtime")

	send(t, service, "/reset")

	assert.Equal(t, resetMessage, sender.last())
	assert.Equal(t, 0, store.Len())
}

func Test_OnTotalCommand(t *testing.T) {
	service, sender, _ := newMemService(t)
	send(t, service, "/add 10 Food")
	send(t, service, "/add 2.345 Airtime")

	send(t, service, "/total")
	assert.Equal(t, "Total for March 15, 2024: 12.35", sender.last())

	send(t, service, "/total month 2024-03")
	assert.Equal(t, "Total for March 2024: 12.35", sender.last())

	send(t, service, "/total year 2023")
	assert.Equal(t, "Total for 2023: 0.00", sender.last())

	send(t, service, "/total 2024-03-14")
	assert.Equal(t, "Total for March 14, 2024: 0.00", sender.last())

	send(t, service, "/total week")
	assert.Equal(t, `Invalid date: "week" should look like YYYY-MM-DD, YYYY-MM or YYYY`, sender.last())
}

func Test_OnListCommand(t *testing.T) {
	service, sender, store := newMemService(t)

	send(t, service, "/list")
	assert.Equal(t, "No expenses for March 15, 2024", sender.last())

	send(t, service, "/add 3 Transportation")
	send(t, service, "/list day")

	id := store.List()[0].ID
	assert.Equal(t,
		fmt.Sprintf("Expenses for March 15, 2024:\n#%d  2024-03-15 10:00  Transportation  3.00", id),
		sender.last())
}

func Test_OnChartCommand_ShouldListDailyPairs(t *testing.T) {
	service, sender, _ := newMemService(t)
	send(t, service, "/add 10 Food")

	send(t, service, "/chart month")

	assert.Equal(t, "March 2024 against the previous period:\n2024-03-15  current 10.00  previous 0.00", sender.last())
}

func Test_OnReportCommand_ShouldGroupByCategory(t *testing.T) {
	service, sender, _ := newMemService(t)
	send(t, service, "/add 10 Food")
	send(t, service, "/add 5 Food")
	send(t, service, "/add 20 Entertainment")

	send(t, service, "/report month")

	assert.Equal(t, strings.Join([]string{
		"Report for March 2024:",
		"Entertainment: 20.00",
		"Food: 15.00",
		"",
		"Total: 35.00",
		"Previous period: 0.00",
	}, "\n"), sender.last())
}

func Test_OnCategoriesCommand(t *testing.T) {
	service, sender, _ := newMemService(t)

	send(t, service, "/categories")

	assert.Equal(t, strings.Join(expense.Categories, "\n"), sender.last())
}

func Test_ParseWindowArgs(t *testing.T) {
	today := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	g, anchor, err := parseWindowArgs("", today)
	require.NoError(t, err)
	assert.Equal(t, period.Day, g)
	assert.Equal(t, today, anchor)

	g, anchor, err = parseWindowArgs("YEAR 2020", today)
	require.NoError(t, err)
	assert.Equal(t, period.Year, g)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), anchor)

	_, _, err = parseWindowArgs("month 2024-03 extra", today)
	assert.Error(t, err)
}

func Test_ParseCommand(t *testing.T) {
	cmd, arg := parseCommand("  /add   12 Food ")
	assert.Equal(t, "/add", cmd)
	assert.Equal(t, "12 Food", arg)

	cmd, arg = parseCommand("/reset")
	assert.Equal(t, "/reset", cmd)
	assert.Equal(t, "", arg)

	cmd, arg = parseCommand("just text")
	assert.Equal(t, "", cmd)
	assert.Equal(t, "just text", arg)
}
