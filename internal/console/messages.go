package console

import (
	"fmt"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/utils"
)

// Render turns an operation result into the line shown to the player
func Render(result domain.OperationResult) string {
	balance := utils.FormatMoney(result.Balance)

	switch result.Code {
	case domain.CodeDepositSuccess:
		return fmt.Sprintf(MsgDepositSuccessFmt, utils.FormatMoney(result.AmountOrZero()), balance)
	case domain.CodeWithdrawSuccess:
		return fmt.Sprintf(MsgWithdrawSuccessFmt, utils.FormatMoney(result.AmountOrZero()), balance)
	case domain.CodeBetWin:
		return fmt.Sprintf(MsgBetWinFmt, utils.FormatMoney(result.WinAmountOrZero()), balance)
	case domain.CodeBetLose:
		return fmt.Sprintf(MsgBetLoseFmt, balance)
	case domain.CodeInsufficientFunds:
		return fmt.Sprintf(MsgInsufficientFundsFmt, balance)
	case domain.CodeInvalidStake:
		if result.Error != "" {
			return result.Error
		}
		return MsgInvalidStake
	case domain.CodeInvalidAmount:
		return MsgInvalidInput
	default:
		if result.Error != "" {
			return result.Error
		}
		return MsgInvalidInput
	}
}
