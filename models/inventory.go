package models

// InventoryUser - пользователь сервиса склада (отдельная схема, таблица users).
type InventoryUser struct {
	ID           int64  `gorm:"primaryKey;column:id" json:"id"`
	Nama         string `gorm:"column:nama" json:"nama"`
	Email        string `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash" json:"-"`
	Verified     bool   `gorm:"column:verified" json:"verified"`
}

// TableName задает имя таблицы для gorm.
func (InventoryUser) TableName() string { return "users" }

// Item - товар на складе (таблица barang).
type Item struct {
	ID          int64   `gorm:"primaryKey;column:id" json:"id"`
	KodeBarang  string  `gorm:"column:kode_barang" json:"kode_barang" validate:"required,max=50"`
	NamaBarang  string  `gorm:"column:nama_barang" json:"nama_barang" validate:"required,max=255"`
	Kategori    string  `gorm:"column:kategori" json:"kategori" validate:"max=100"`
	HargaSatuan float64 `gorm:"column:harga_satuan" json:"harga_satuan" validate:"gte=0"`
	HargaPak    float64 `gorm:"column:harga_pak" json:"harga_pak" validate:"gte=0"`
	Stok        int64   `gorm:"column:stok" json:"stok" validate:"gte=0"`
}

// TableName задает имя таблицы для gorm.
func (Item) TableName() string { return "barang" }

// InventoryLoginResponse - ответ на вход в сервис склада.
type InventoryLoginResponse struct {
	Token string         `json:"token"`
	User  *InventoryUser `json:"user"`
}
