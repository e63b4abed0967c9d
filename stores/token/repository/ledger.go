package repository

import (
	"math/big"
	"sync"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/log"
	"github.com/nfty-labs/marketapi/domain"
)

// ValueLedgerRepo is an in-process stand-in for the secondary fungible
// currency. Balances and allowances live behind one mutex so a transfer
// is atomic.
type ValueLedgerRepo struct {
	mu         sync.Mutex
	balances   map[domain.Address]*big.Int
	allowances map[domain.Address]map[domain.Address]*big.Int
}

func NewValueLedgerRepo() *ValueLedgerRepo {
	return &ValueLedgerRepo{
		balances:   make(map[domain.Address]*big.Int),
		allowances: make(map[domain.Address]map[domain.Address]*big.Int),
	}
}

var _ domain.ValueLedger = (*ValueLedgerRepo)(nil)

func (r *ValueLedgerRepo) balanceOf(account domain.Address) *big.Int {
	if b, ok := r.balances[account.ToLower()]; ok {
		return b
	}
	return domain.Big0
}

func (r *ValueLedgerRepo) allowanceOf(owner, spender domain.Address) *big.Int {
	if m, ok := r.allowances[owner.ToLower()]; ok {
		if a, ok := m[spender.ToLower()]; ok {
			return a
		}
	}
	return domain.Big0
}

// Mint credits an account. Seeding only, there is no burn.
func (r *ValueLedgerRepo) Mint(ctx bCtx.Ctx, account domain.Address, amount *big.Int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.balances[account.ToLower()] = new(big.Int).Add(r.balanceOf(account), amount)
}

// Approve grants spender the right to pull up to amount from owner.
func (r *ValueLedgerRepo) Approve(ctx bCtx.Ctx, owner, spender domain.Address, amount *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.allowances[owner.ToLower()]
	if !ok {
		m = make(map[domain.Address]*big.Int)
		r.allowances[owner.ToLower()] = m
	}
	m[spender.ToLower()] = new(big.Int).Set(amount)
	return nil
}

func (r *ValueLedgerRepo) BalanceOf(ctx bCtx.Ctx, account domain.Address) (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return new(big.Int).Set(r.balanceOf(account)), nil
}

func (r *ValueLedgerRepo) Allowance(ctx bCtx.Ctx, owner, spender domain.Address) (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return new(big.Int).Set(r.allowanceOf(owner, spender)), nil
}

func (r *ValueLedgerRepo) move(ctx bCtx.Ctx, from, to domain.Address, amount *big.Int) error {
	balance := r.balanceOf(from)
	if balance.Cmp(amount) < 0 {
		ctx.WithFields(log.Fields{
			"from":    from,
			"amount":  amount,
			"balance": balance,
		}).Warn("insufficient balance")
		return domain.ErrInsufficientFunds
	}
	r.balances[from.ToLower()] = new(big.Int).Sub(balance, amount)
	r.balances[to.ToLower()] = new(big.Int).Add(r.balanceOf(to), amount)
	return nil
}

func (r *ValueLedgerRepo) Transfer(ctx bCtx.Ctx, from, to domain.Address, amount *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.move(ctx, from, to, amount)
}

func (r *ValueLedgerRepo) TransferFrom(ctx bCtx.Ctx, spender, from, to domain.Address, amount *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	allowance := r.allowanceOf(from, spender)
	if allowance.Cmp(amount) < 0 {
		ctx.WithFields(log.Fields{
			"spender":   spender,
			"from":      from,
			"amount":    amount,
			"allowance": allowance,
		}).Warn("insufficient allowance")
		return domain.ErrInsufficientAllowance
	}
	if err := r.move(ctx, from, to, amount); err != nil {
		return err
	}
	r.allowances[from.ToLower()][spender.ToLower()] = new(big.Int).Sub(allowance, amount)
	return nil
}

// PrimaryLedgerRepo pays out primary currency held by the settlement
// engine. It only tracks cumulative credits per recipient.
type PrimaryLedgerRepo struct {
	mu      sync.Mutex
	credits map[domain.Address]*big.Int
}

func NewPrimaryLedgerRepo() *PrimaryLedgerRepo {
	return &PrimaryLedgerRepo{
		credits: make(map[domain.Address]*big.Int),
	}
}

var _ domain.PrimaryLedger = (*PrimaryLedgerRepo)(nil)

func (r *PrimaryLedgerRepo) Transfer(ctx bCtx.Ctx, to domain.Address, amount *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.credits[to.ToLower()]
	if !ok {
		prev = domain.Big0
	}
	r.credits[to.ToLower()] = new(big.Int).Add(prev, amount)
	return nil
}

// Reclaim pulls a payout back into escrow during a settlement rollback.
func (r *PrimaryLedgerRepo) Reclaim(ctx bCtx.Ctx, from domain.Address, amount *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.credits[from.ToLower()]
	if !ok || prev.Cmp(amount) < 0 {
		ctx.WithFields(log.Fields{
			"from":   from,
			"amount": amount,
		}).Warn("reclaim exceeds credited amount")
		return domain.ErrInsufficientFunds
	}
	r.credits[from.ToLower()] = new(big.Int).Sub(prev, amount)
	return nil
}

// CreditOf reports the total paid out to an account so far.
func (r *PrimaryLedgerRepo) CreditOf(account domain.Address) *big.Int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.credits[account.ToLower()]; ok {
		return new(big.Int).Set(c)
	}
	return big.NewInt(0)
}
