package entity

import "num_market/internal/domain/value"

// Минимальные значения, которые показываются пользователю.
const (
	DepositFloor        = 50
	MonthlyFeeFloor     = 59
	ContractPeriodFloor = 24
)

// RawListing предложение номера в том виде, в котором его вернул сервис.
type RawListing struct {
	BillID         value.RawField // billId
	Deposit        value.RawField // lhYcje, предоплата
	MonthlyFee     value.RawField // lhBdje, минимальный ежемесячный платёж
	ContractPeriod value.RawField // lhQyq, срок контракта в месяцах
	Premium        value.RawField // islh, "1" для красивых номеров
}

// ListingRow нормализованная строка списка номеров.
type ListingRow struct {
	Number         string
	Deposit        string
	MonthlyFee     string
	ContractPeriod string
	IsPremium      bool
	Rating         Rating
}
