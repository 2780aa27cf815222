package pneu

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Pneu) error
	BuscarPorID(db *gorm.DB, id uint) (*Pneu, error)
	BuscarPorCodigo(db *gorm.DB, codigo string) (*Pneu, error)
	BuscarPorFogo(db *gorm.DB, numeroFogo string) (*Pneu, error)
	ListarTodos(db *gorm.DB) ([]Pneu, error)
	ListarPorVeiculo(db *gorm.DB, veiculoID uint) ([]Pneu, error)
	ContarMontadosNoVeiculo(db *gorm.DB, veiculoID uint) (int64, error)
	Remover(db *gorm.DB, id uint) error
	SalvarEmLotes(db *gorm.DB, pneus []Pneu, tamanhoLote int) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Pneu) error {
	return db.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Pneu, error) {
	var p Pneu
	err := db.Preload("Historico", ordenarHistorico).First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) BuscarPorCodigo(db *gorm.DB, codigo string) (*Pneu, error) {
	var p Pneu
	err := db.Preload("Historico", ordenarHistorico).Where("codigo = ?", codigo).First(&p).Error
	return &p, err
}

func (r *repositoryImpl) BuscarPorFogo(db *gorm.DB, numeroFogo string) (*Pneu, error) {
	var p Pneu
	err := db.Preload("Historico", ordenarHistorico).Where("numero_fogo = ?", numeroFogo).First(&p).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Pneu, error) {
	var pneus []Pneu
	err := db.Preload("Historico", ordenarHistorico).Order("numero_fogo asc").Find(&pneus).Error
	return pneus, err
}

func (r *repositoryImpl) ListarPorVeiculo(db *gorm.DB, veiculoID uint) ([]Pneu, error) {
	var pneus []Pneu
	err := db.Preload("Historico", ordenarHistorico).
		Where("veiculo_id = ?", veiculoID).Find(&pneus).Error
	return pneus, err
}

func (r *repositoryImpl) ContarMontadosNoVeiculo(db *gorm.DB, veiculoID uint) (int64, error) {
	var total int64
	err := db.Model(&Pneu{}).Where("veiculo_id = ?", veiculoID).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Remover(db *gorm.DB, id uint) error {
	return db.Delete(&Pneu{}, id).Error
}

// SalvarEmLotes faz upsert sequencial em lotes (importação em massa).
// Lotes anteriores permanecem gravados se um lote posterior falhar.
func (r *repositoryImpl) SalvarEmLotes(db *gorm.DB, pneus []Pneu, tamanhoLote int) error {
	if len(pneus) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(&pneus, tamanhoLote).Error
}

func ordenarHistorico(db *gorm.DB) *gorm.DB {
	return db.Order("created_at asc, id asc")
}
