package veiculo

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Salvar(db *gorm.DB, v *Veiculo) error
	BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error)
	BuscarPorPlaca(db *gorm.DB, placa string) (*Veiculo, error)
	ListarTodos(db *gorm.DB) ([]Veiculo, error)
	Remover(db *gorm.DB, id uint) error
	SalvarEmLotes(db *gorm.DB, veiculos []Veiculo, tamanhoLote int) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *Veiculo) error {
	return db.Save(v).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error) {
	var v Veiculo
	err := db.First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) BuscarPorPlaca(db *gorm.DB, placa string) (*Veiculo, error) {
	var v Veiculo
	err := db.Where("placa = ?", placa).First(&v).Error
	return &v, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Veiculo, error) {
	var veiculos []Veiculo
	err := db.Order("placa asc").Find(&veiculos).Error
	return veiculos, err
}

func (r *repositoryImpl) Remover(db *gorm.DB, id uint) error {
	return db.Delete(&Veiculo{}, id).Error
}

// SalvarEmLotes faz upsert sequencial em lotes. Lotes anteriores permanecem
// gravados se um lote posterior falhar (sem rollback entre lotes).
func (r *repositoryImpl) SalvarEmLotes(db *gorm.DB, veiculos []Veiculo, tamanhoLote int) error {
	if len(veiculos) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(&veiculos, tamanhoLote).Error
}
