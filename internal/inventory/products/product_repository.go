package products

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"
)

type ProductRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *ProductRepository {
	return &ProductRepository{repository: r}
}

func (r *ProductRepository) PersistProduct(req models.CreateProductRequest) (*models.Product, error) {
	product := models.Product{
		SKU:     req.SKU,
		Barcode: req.Barcode,
		Name:    req.Name,
	}

	query := r.repository.GoquDBWrapper.Insert("products").
		Rows(goqu.Record{
			"sku":     product.SKU,
			"barcode": product.Barcode,
			"name":    product.Name,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&product.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Duplicate SKU or barcode for product", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert product record: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) GetProducts() ([]models.Product, error) {
	var products []models.Product
	query := r.repository.GoquDBWrapper.
		Select("id", "sku", "barcode", "name", "created_at").
		From("products").
		Order(goqu.I("name").Asc())

	if err := query.Executor().ScanStructs(&products); err != nil {
		return nil, fmt.Errorf("unable to select products from database: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) GetProduct(id int) (*models.Product, error) {
	return r.getProductBy(goqu.Ex{"id": id})
}

func (r *ProductRepository) GetProductBySKU(sku string) (*models.Product, error) {
	return r.getProductBy(goqu.Ex{"sku": sku})
}

func (r *ProductRepository) GetProductByBarcode(barcode string) (*models.Product, error) {
	return r.getProductBy(goqu.Ex{"barcode": barcode})
}

func (r *ProductRepository) getProductBy(conditions goqu.Ex) (*models.Product, error) {
	var product models.Product
	query := r.repository.GoquDBWrapper.
		Select("id", "sku", "barcode", "name", "created_at").
		From("products").
		Where(conditions)

	found, err := query.Executor().ScanStruct(&product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &product, nil
}
