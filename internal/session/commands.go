package session

import "github.com/SscSPs/currency_exchanger/internal/core/domain"

// CommandType names a session command.
type CommandType string

const (
	CmdSelectFromCurrency CommandType = "selectFromCurrency"
	CmdSelectToCurrency   CommandType = "selectToCurrency"
	CmdEnterAmount        CommandType = "enterAmount"
	CmdRatesUpdated       CommandType = "ratesUpdated"
	CmdSubmit             CommandType = "submit"
	CmdRefresh            CommandType = "refresh"
)

// Command is one input to the session loop. Value carries the currency code
// or amount text; Rates and Err carry a poll outcome.
type Command struct {
	Type  CommandType
	Value string
	Rates *domain.RateTable
	Err   error
}

func SelectFromCurrency(code string) Command {
	return Command{Type: CmdSelectFromCurrency, Value: code}
}

func SelectToCurrency(code string) Command {
	return Command{Type: CmdSelectToCurrency, Value: code}
}

func EnterAmount(text string) Command {
	return Command{Type: CmdEnterAmount, Value: text}
}

// RatesUpdated reports a poll outcome; exactly one of table and err is set.
func RatesUpdated(table *domain.RateTable, err error) Command {
	return Command{Type: CmdRatesUpdated, Rates: table, Err: err}
}

func Submit() Command {
	return Command{Type: CmdSubmit}
}

func Refresh() Command {
	return Command{Type: CmdRefresh}
}

// ParseCommandType validates an externally supplied command name.
func ParseCommandType(s string) (CommandType, bool) {
	switch t := CommandType(s); t {
	case CmdSelectFromCurrency, CmdSelectToCurrency, CmdEnterAmount, CmdSubmit, CmdRefresh:
		return t, true
	}
	return "", false
}
