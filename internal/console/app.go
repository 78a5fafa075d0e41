package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/logger"
	"github.com/osse101/slotwallet/internal/utils"
	"github.com/osse101/slotwallet/internal/wallet"
)

// App is the interactive read-eval-print loop over a wallet service
type App struct {
	in      *bufio.Scanner
	out     io.Writer
	service wallet.Service
}

// NewApp creates a console app reading commands from in and writing replies to out
func NewApp(in io.Reader, out io.Writer, service wallet.Service) *App {
	return &App{
		in:      bufio.NewScanner(in),
		out:     out,
		service: service,
	}
}

// Run prompts for commands until exit, end of input or context cancellation.
// It returns an error only when input cannot be read or a bet cannot be resolved.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			log.Info(LogMsgSessionEnded, "reason", err.Error())
			return nil
		}

		if err := a.println(MsgPrompt); err != nil {
			return err
		}

		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return fmt.Errorf(ErrMsgReadInputFmt, err)
			}
			log.Info(LogMsgSessionEnded, "reason", "eof")
			return nil
		}

		cmd, ok := Parse(a.in.Text())
		if !ok {
			log.Debug(LogMsgInvalidInput)
			if err := a.println(MsgInvalidInput, ""); err != nil {
				return err
			}
			continue
		}

		if cmd.Type == CommandExit {
			log.Info(LogMsgSessionEnded, "reason", WordExit)
			return a.println(MsgExit, "")
		}

		cmdCtx := logger.WithRequestID(ctx, logger.GenerateRequestID())
		reply, err := a.execute(cmdCtx, cmd)
		if err != nil {
			return err
		}
		if err := a.println(reply, ""); err != nil {
			return err
		}
	}
}

func (a *App) execute(ctx context.Context, cmd Command) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCommandReceived, "command", cmd.Type, "amount", cmd.Amount.String())

	switch cmd.Type {
	case CommandDeposit:
		return Render(a.service.Deposit(ctx, cmd.Amount)), nil
	case CommandWithdraw:
		return Render(a.service.Withdraw(ctx, cmd.Amount)), nil
	case CommandBet:
		result, err := a.service.Bet(ctx, cmd.Amount)
		if err != nil {
			log.Error(LogMsgBetFailed, "error", err)
			return "", fmt.Errorf(ErrMsgBetFmt, err)
		}
		return Render(result), nil
	case CommandBalance:
		return formatBalance(a.service.Balance(ctx)), nil
	default:
		return MsgInvalidInput, nil
	}
}

func formatBalance(balance decimal.Decimal) string {
	return fmt.Sprintf(MsgBalanceFmt, utils.FormatMoney(balance))
}

func (a *App) println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return fmt.Errorf(ErrMsgWriteFmt, err)
		}
	}
	return nil
}
