package historico

import "gorm.io/gorm"

// Repository expõe apenas inserção e leitura: o histórico é append-only.
type Repository interface {
	Salvar(db *gorm.DB, r *Registro) error
	ListarPorPneu(db *gorm.DB, pneuID uint) ([]Registro, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, reg *Registro) error {
	return db.Create(reg).Error
}

func (r *repositoryImpl) ListarPorPneu(db *gorm.DB, pneuID uint) ([]Registro, error) {
	var registros []Registro
	err := db.Where("pneu_id = ?", pneuID).Order("created_at asc, id asc").Find(&registros).Error
	return registros, err
}
