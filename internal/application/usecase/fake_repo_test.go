package usecase_test

import (
	"context"
	"errors"

	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
	"github.com/camisetasbahia/catalogo-api/internal/domain/repository"
)

// fakeRepo implementación en memoria del repositorio para los tests de los
// casos de uso. failBatches permite simular fallos por número de llamada a
// CreateBatch (base 1).
type fakeRepo struct {
	products []*entity.Product

	listErr   error
	getErr    error
	countErr  error
	createErr error
	updateErr error
	deleteErr error

	batchCalls  int
	failBatches map[int]bool
}

var _ repository.ProductRepository = (*fakeRepo)(nil)

var errStore = errors.New("store caído")

func (f *fakeRepo) List(context.Context) ([]*entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Count(context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.products)), nil
}

func (f *fakeRepo) Create(_ context.Context, p *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.products = append(f.products, p)
	return nil
}

func (f *fakeRepo) CreateBatch(_ context.Context, batch []*entity.Product) error {
	f.batchCalls++
	if f.failBatches[f.batchCalls] {
		return errStore
	}
	f.products = append(f.products, batch...)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, p *entity.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.products {
		if existing.ID == p.ID {
			f.products[i] = p
			return nil
		}
	}
	return errStore
}

func (f *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
