package routes

const (
	Health = "/health"

	Owners    = "/api/owner"
	OwnerByID = "/api/owner/{owner_id}"

	RentProperties      = "/api/rent-property"
	RentPropertyByID    = "/api/rent-property/{rent_property_id}"
	RentTransactions    = "/api/rent-transaction"
	RentTransactionByID = "/api/rent-transaction/{rent_transaction_id}"
	MyRentTransactions  = "/api/my-rent-transaction"
	PayRent             = "/api/pay-rent/{rent_transaction_id}"

	SaleProperties      = "/api/sale-property"
	SalePropertyByID    = "/api/sale-property/{sale_property_id}"
	SaleTransactions    = "/api/sale-transaction"
	SaleTransactionByID = "/api/sale-transaction/{sale_transaction_id}"
	MySaleTransactions  = "/api/my-sale-transaction"
	PaySale             = "/api/pay-sale/{sale_transaction_id}"

	Register = "/api/user"
	Login    = "/api/login"
	Profile  = "/api/profile"
	Logout   = "/api/logout"

	RentPicturesPrefix = "/rent-pictures/"
	SalePicturesPrefix = "/sale-pictures/"
)
