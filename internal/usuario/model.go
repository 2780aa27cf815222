package usuario

import "gorm.io/gorm"

// Usuario é uma conta de acesso ao sistema. O nível (JUNIOR/PLENO/SENIOR)
// viaja no token e é repassado explicitamente às checagens de permissão.
type Usuario struct {
	gorm.Model
	Nome  string `gorm:"size:100" json:"nome"`
	Email string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Senha string `gorm:"not null" json:"-"`
	Nivel string `gorm:"size:10;not null" json:"nivel"`
}
