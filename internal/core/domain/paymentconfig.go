package domain

// BankDetails are the platform's receiving bank coordinates shown to users.
type BankDetails struct {
	IBAN        string  `json:"iban"`
	Recipient   string  `json:"recipient"`
	Description *string `json:"description,omitempty"`
}

// CryptoDetails are the platform's receiving crypto coordinates shown to users.
type CryptoDetails struct {
	Network string  `json:"network"`
	Address string  `json:"address"`
	Memo    *string `json:"memo,omitempty"`
}

// PaymentConfig is the admin-managed enablement snapshot for deposits and
// withdraws. The core receives it as a read-only value on request creation;
// it is never read from shared state mid-operation.
type PaymentConfig struct {
	DepositsEnabled  bool                   `json:"deposits_enabled"`
	WithdrawsEnabled bool                   `json:"withdraws_enabled"`
	DepositMethods   map[RequestMethod]bool `json:"deposit_methods"`
	WithdrawMethods  map[RequestMethod]bool `json:"withdraw_methods"`
	Bank             BankDetails            `json:"bank"`
	Crypto           CryptoDetails          `json:"crypto"`
}

// DefaultPaymentConfig returns the configuration used when no stored row exists.
func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		DepositsEnabled:  true,
		WithdrawsEnabled: true,
		DepositMethods: map[RequestMethod]bool{
			MethodBank: true, MethodCard: true, MethodCrypto: true,
		},
		WithdrawMethods: map[RequestMethod]bool{
			MethodBank: true, MethodCard: true, MethodCrypto: true,
		},
		Bank: BankDetails{
			IBAN:      "TR00 0000 0000 0000 0000 0000 00",
			Recipient: "VALERPAY",
		},
		Crypto: CryptoDetails{
			Network: "TRC20",
			Address: "",
		},
	}
}

// MethodEnabled resolves the enablement decision for one request type/method
// pair.
func (c PaymentConfig) MethodEnabled(t RequestType, m RequestMethod) bool {
	switch t {
	case RequestTypeDeposit:
		return c.DepositsEnabled && c.DepositMethods[m]
	case RequestTypeWithdraw:
		return c.WithdrawsEnabled && c.WithdrawMethods[m]
	}
	return false
}
