package compensation

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=compensation_repo.go -destination=mock/compensation_repo_mock.go -package=mock
type Repository interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*Compensation, error)
	Create(ctx context.Context, comp *Compensation) error
	Save(ctx context.Context, comp *Compensation) error
	Delete(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Compensation, error) {
	var comp Compensation
	res := r.db.WithContext(ctx).
		Where("employee_compensation_id = ?", employeeID).
		Limit(1).
		Find(&comp)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &comp, nil
}

func (r *repository) Create(ctx context.Context, comp *Compensation) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) Save(ctx context.Context, comp *Compensation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(comp).Error
}

func (r *repository) Delete(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Delete(&Compensation{}, "employee_compensation_id = ?", employeeID).Error
}
