package domain

import (
	"math/big"

	"github.com/nfty-labs/marketapi/base/ctx"
)

// ValueLedger moves the secondary fungible currency between accounts.
// TransferFrom consumes allowance granted by the owner to the spender.
// Approve overwrites that allowance, the engine uses it to hand back
// allowance consumed by a settlement that is being rolled back.
type ValueLedger interface {
	BalanceOf(c ctx.Ctx, account Address) (*big.Int, error)
	Allowance(c ctx.Ctx, owner, spender Address) (*big.Int, error)
	Approve(c ctx.Ctx, owner, spender Address, amount *big.Int) error
	TransferFrom(c ctx.Ctx, spender, from, to Address, amount *big.Int) error
	Transfer(c ctx.Ctx, from, to Address, amount *big.Int) error
}

// PrimaryLedger pays out primary currency held in escrow by the
// settlement engine. A transfer hands control to the recipient and may
// synchronously re-enter the marketplace, callers must guard for that.
// Reclaim pulls a payout back into escrow while the settlement that
// issued it is being rolled back.
type PrimaryLedger interface {
	Transfer(c ctx.Ctx, to Address, amount *big.Int) error
	Reclaim(c ctx.Ctx, from Address, amount *big.Int) error
}
