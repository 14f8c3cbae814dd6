package constant

// Success messages returned in the response envelope.
const (
	MsgRegisterSuccess = "Pembeli berhasil disimpan"
	MsgLoginSuccess    = "Login berhasil"

	MsgPembeliCreated = "Data Pembeli Berhasil Disimpan"
	MsgPembeliUpdated = "Data Pembeli Berhasil Diperbarui"
	MsgPembeliDeleted = "Data Pembeli Berhasil Dihapus"

	MsgProdukCreated = "Data Produk Berhasil Disimpan"
	MsgProdukUpdated = "Data Produk Berhasil Diperbarui"
	MsgProdukDeleted = "Data Produk Berhasil Dihapus"
)

// MsgPasswordTooLong matches the validator message for maxbytes=72 on password.
const MsgPasswordTooLong = "password maksimal 72 byte"

// DefaultTokenLabel is the client label recorded for tokens minted by register and login.
const DefaultTokenLabel = "PembeliApp"

const (
	EventPembeliRegistered = "pembeli.registered"
)
