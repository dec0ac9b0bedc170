package entity

// DebitResult is the outcome of a debit. Success=false is an expected business outcome.
type DebitResult struct {
	Success          bool  `json:"success"`
	RemainingBalance int64 `json:"remainingBalance"`
}

// CreditResult is the outcome of a credit. Duplicate marks an idempotent replay.
type CreditResult struct {
	Success    bool  `json:"success"`
	NewBalance int64 `json:"newBalance"`
	Duplicate  bool  `json:"duplicate,omitempty"`
}

// CreditRequest carries the inputs of a credit operation
type CreditRequest struct {
	UserID             string
	Amount             int64
	Kind               TransactionKind // purchase when empty
	ExternalPaymentRef string
	RelatedID          string
}

// EffectiveKind resolves an empty kind to purchase
func (r CreditRequest) EffectiveKind() TransactionKind {
	if r.Kind == "" {
		return KindPurchase
	}
	return r.Kind
}

// BalanceDiscrepancy reports an account whose balance does not match its transaction log
type BalanceDiscrepancy struct {
	UserID       string
	Balance      int64
	LedgerSum    int64
	Transactions int64
}

// Delta is balance minus ledger sum
func (d BalanceDiscrepancy) Delta() int64 {
	return d.Balance - d.LedgerSum
}
