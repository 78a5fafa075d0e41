package console

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// CommandType identifies a console action
type CommandType int

const (
	CommandDeposit CommandType = iota + 1
	CommandWithdraw
	CommandBet
	CommandBalance
	CommandExit
)

// Command is a parsed console line. Amount is zero for commands without one.
type Command struct {
	Type   CommandType
	Amount decimal.Decimal
}

// moneyPattern accepts digits with an optional '.' or ',' separator and one or
// two fractional digits. Thousands separators and inner spaces are rejected.
var moneyPattern = regexp.MustCompile(`^\d+([.,]\d{1,2})?$`)

var fold = cases.Fold()

var amountCommands = map[string]CommandType{
	WordDeposit:  CommandDeposit,
	WordWithdraw: CommandWithdraw,
	WordBet:      CommandBet,
}

var bareCommands = map[string]CommandType{
	WordBalance: CommandBalance,
	WordExit:    CommandExit,
}

// Parse reads one console line. It reports false for anything that is not
// exactly "<action> <amount>" or a single bare command word.
func Parse(line string) (Command, bool) {
	parts := strings.Fields(line)

	switch len(parts) {
	case 1:
		if t, ok := bareCommands[fold.String(parts[0])]; ok {
			return Command{Type: t}, true
		}
		return Command{}, false
	case 2:
		t, ok := amountCommands[fold.String(parts[0])]
		if !ok {
			return Command{}, false
		}
		amount, ok := ParseAmount(parts[1])
		if !ok {
			return Command{}, false
		}
		return Command{Type: t, Amount: amount}, true
	default:
		return Command{}, false
	}
}

// ParseAmount parses a strictly positive amount with at most two decimals
func ParseAmount(input string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(input)
	if !moneyPattern.MatchString(s) {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

func (t CommandType) String() string {
	switch t {
	case CommandDeposit:
		return WordDeposit
	case CommandWithdraw:
		return WordWithdraw
	case CommandBet:
		return WordBet
	case CommandBalance:
		return WordBalance
	case CommandExit:
		return WordExit
	default:
		return "unknown"
	}
}
