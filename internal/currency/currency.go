package currency

// Currency describes one entry of the fixed display-currency catalog.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// Catalog is the fixed set of currencies the service can price in.
// Read-only reference data.
var Catalog = []Currency{
	{Code: "AED", Symbol: "AED", Name: "UAE Dirham"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "SAR", Symbol: "SAR", Name: "Saudi Riyal"},
	{Code: "QAR", Symbol: "QAR", Name: "Qatari Riyal"},
	{Code: "KWD", Symbol: "KD", Name: "Kuwaiti Dinar"},
	{Code: "BHD", Symbol: "BD", Name: "Bahraini Dinar"},
	{Code: "OMR", Symbol: "OMR", Name: "Omani Rial"},
	{Code: "EGP", Symbol: "E£", Name: "Egyptian Pound"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{Code: "UAH", Symbol: "₴", Name: "Ukrainian Hryvnia"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CNY", Symbol: "CN¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
}

// Lookup finds a catalog entry by code.
func Lookup(code string) (Currency, bool) {
	for _, c := range Catalog {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
