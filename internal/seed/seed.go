// Package seed loads the reference TermoFlexPro dataset.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/termoflexpro/termoflex-store/internal/category"
	categorydto "github.com/termoflexpro/termoflex-store/internal/category/dto"
	categoryrepo "github.com/termoflexpro/termoflex-store/internal/category/repository"
	categoryuc "github.com/termoflexpro/termoflex-store/internal/category/usecase"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/material"
	materialdto "github.com/termoflexpro/termoflex-store/internal/material/dto"
	materialrepo "github.com/termoflexpro/termoflex-store/internal/material/repository"
	materialuc "github.com/termoflexpro/termoflex-store/internal/material/usecase"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/product"
	productdto "github.com/termoflexpro/termoflex-store/internal/product/dto"
	productrepo "github.com/termoflexpro/termoflex-store/internal/product/repository"
	productuc "github.com/termoflexpro/termoflex-store/internal/product/usecase"
	"github.com/termoflexpro/termoflex-store/internal/productmaterial"
	pmdto "github.com/termoflexpro/termoflex-store/internal/productmaterial/dto"
	pmrepo "github.com/termoflexpro/termoflex-store/internal/productmaterial/repository"
	pmuc "github.com/termoflexpro/termoflex-store/internal/productmaterial/usecase"
	"github.com/termoflexpro/termoflex-store/internal/qualitytest"
	testdto "github.com/termoflexpro/termoflex-store/internal/qualitytest/dto"
	testrepo "github.com/termoflexpro/termoflex-store/internal/qualitytest/repository"
	testuc "github.com/termoflexpro/termoflex-store/internal/qualitytest/usecase"
	"github.com/termoflexpro/termoflex-store/internal/sale"
	saledto "github.com/termoflexpro/termoflex-store/internal/sale/dto"
	salerepo "github.com/termoflexpro/termoflex-store/internal/sale/repository"
	saleuc "github.com/termoflexpro/termoflex-store/internal/sale/usecase"
	"github.com/termoflexpro/termoflex-store/internal/sensor"
	sensordto "github.com/termoflexpro/termoflex-store/internal/sensor/dto"
	sensorrepo "github.com/termoflexpro/termoflex-store/internal/sensor/repository"
	sensoruc "github.com/termoflexpro/termoflex-store/internal/sensor/usecase"
	"github.com/termoflexpro/termoflex-store/internal/supplier"
	supplierdto "github.com/termoflexpro/termoflex-store/internal/supplier/dto"
	supplierrepo "github.com/termoflexpro/termoflex-store/internal/supplier/repository"
	supplieruc "github.com/termoflexpro/termoflex-store/internal/supplier/usecase"
	"github.com/termoflexpro/termoflex-store/internal/user"
	userdto "github.com/termoflexpro/termoflex-store/internal/user/dto"
	userrepo "github.com/termoflexpro/termoflex-store/internal/user/repository"
	useruc "github.com/termoflexpro/termoflex-store/internal/user/usecase"
)

//go:embed seed.yaml
var defaultDataset []byte

// Dataset mirrors seed.yaml. Decimals and dates are kept as strings and
// parsed while loading.
type Dataset struct {
	Categories []struct {
		Name        string  `yaml:"name"`
		Description *string `yaml:"description"`
	} `yaml:"categories"`

	Products []struct {
		Name        string             `yaml:"name"`
		Description *string            `yaml:"description"`
		Category    string             `yaml:"category"`
		Price       string             `yaml:"price"`
		Stock       int                `yaml:"stock"`
		Status      model.ActiveStatus `yaml:"status"`
		ReleaseDate string             `yaml:"release_date"`
	} `yaml:"products"`

	Sensors []struct {
		Product        string             `yaml:"product"`
		Type           string             `yaml:"type"`
		Specifications *string            `yaml:"specifications"`
		Status         model.ActiveStatus `yaml:"status"`
	} `yaml:"sensors"`

	Materials []struct {
		Name        string             `yaml:"name"`
		Description *string            `yaml:"description"`
		Status      model.ActiveStatus `yaml:"status"`
	} `yaml:"materials"`

	ProductMaterials []struct {
		Product      string `yaml:"product"`
		Material     string `yaml:"material"`
		QuantityUsed string `yaml:"quantity_used"`
	} `yaml:"product_materials"`

	Tests []struct {
		Product     string           `yaml:"product"`
		Description *string          `yaml:"description"`
		Results     *string          `yaml:"results"`
		Status      model.TestStatus `yaml:"status"`
		Date        string           `yaml:"date"`
	} `yaml:"tests"`

	Users []struct {
		Name    string             `yaml:"name"`
		Email   string             `yaml:"email"`
		Phone   *string            `yaml:"phone"`
		Address *string            `yaml:"address"`
		Status  model.ActiveStatus `yaml:"status"`
	} `yaml:"users"`

	Sales []struct {
		User     string           `yaml:"user"`
		Product  string           `yaml:"product"`
		Quantity int              `yaml:"quantity"`
		Total    string           `yaml:"total"`
		Status   model.SaleStatus `yaml:"status"`
		Date     string           `yaml:"date"`
	} `yaml:"sales"`

	Suppliers []struct {
		Name    string             `yaml:"name"`
		Contact *string            `yaml:"contact"`
		Address *string            `yaml:"address"`
		Status  model.ActiveStatus `yaml:"status"`
	} `yaml:"suppliers"`
}

// Report counts the rows written per table.
type Report map[string]int

// Parse decodes a dataset document.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &ds, nil
}

// Default returns the embedded reference dataset.
func Default() (*Dataset, error) {
	return Parse(defaultDataset)
}

// Seed loads the embedded dataset. See Load.
func Seed(ctx context.Context, db *sqlx.DB, log logger.ZapLogger) (Report, error) {
	ds, err := Default()
	if err != nil {
		return nil, err
	}
	return Load(ctx, db, ds, log)
}

// Load writes ds through the entity use cases inside one transaction. Any
// failure rolls back the whole dataset.
func Load(ctx context.Context, db *sqlx.DB, ds *Dataset, log logger.ZapLogger) (Report, error) {
	var report Report
	err := database.WithTx(ctx, db, func(tx *sqlx.Tx) error {
		l := newLoader(tx, log)
		if err := l.load(ctx, ds); err != nil {
			return err
		}
		report = l.report
		return nil
	})
	if err != nil {
		log.Error("Seeding failed, nothing was written", zap.Error(err))
		return nil, err
	}

	fields := make([]zap.Field, 0, len(report))
	for table, n := range report {
		fields = append(fields, zap.Int(table, n))
	}
	log.Info("Seed data loaded", fields...)
	return report, nil
}

type loader struct {
	categories       category.UseCase
	products         product.UseCase
	sensors          sensor.UseCase
	materials        material.UseCase
	productMaterials productmaterial.UseCase
	tests            qualitytest.UseCase
	users            user.UseCase
	sales            sale.UseCase
	suppliers        supplier.UseCase

	report Report
}

// newLoader binds every use case to tx so the dataset commits or rolls back
// as a unit.
func newLoader(tx *sqlx.Tx, log logger.ZapLogger) *loader {
	return &loader{
		categories:       categoryuc.NewCategoryUseCase(categoryrepo.NewSQLRepository(tx), log),
		products:         productuc.NewProductUseCase(productrepo.NewSQLRepository(tx), log),
		sensors:          sensoruc.NewSensorUseCase(sensorrepo.NewSQLRepository(tx), log),
		materials:        materialuc.NewMaterialUseCase(materialrepo.NewSQLRepository(tx), log),
		productMaterials: pmuc.NewProductMaterialUseCase(pmrepo.NewSQLRepository(tx), log),
		tests:            testuc.NewTestUseCase(testrepo.NewSQLRepository(tx), log),
		users:            useruc.NewUserUseCase(userrepo.NewSQLRepository(tx), log),
		sales:            saleuc.NewSaleUseCase(salerepo.NewSQLRepository(tx), log),
		suppliers:        supplieruc.NewSupplierUseCase(supplierrepo.NewSQLRepository(tx), log),
		report:           Report{},
	}
}

func (l *loader) load(ctx context.Context, ds *Dataset) error {
	steps := []struct {
		table string
		fn    func(context.Context, *Dataset) error
	}{
		{"categorias", l.loadCategories},
		{"usuarios", l.loadUsers},
		{"proveedores", l.loadSuppliers},
		{"materiales", l.loadMaterials},
		{"productos", l.loadProducts},
		{"sensores", l.loadSensors},
		{"pruebas", l.loadTests},
		{"ventas", l.loadSales},
		{"producto_material", l.loadProductMaterials},
	}
	for _, step := range steps {
		if err := step.fn(ctx, ds); err != nil {
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
	}
	return nil
}

func (l *loader) loadCategories(ctx context.Context, ds *Dataset) error {
	for _, c := range ds.Categories {
		if _, err := l.categories.CreateCategory(ctx, &categorydto.CreateCategoryInput{
			Name:        c.Name,
			Description: c.Description,
		}); err != nil {
			return fmt.Errorf("category %q: %w", c.Name, err)
		}
		l.report["categorias"]++
	}
	return nil
}

func (l *loader) loadUsers(ctx context.Context, ds *Dataset) error {
	for _, u := range ds.Users {
		if _, err := l.users.CreateUser(ctx, &userdto.CreateUserInput{
			Name:    u.Name,
			Email:   u.Email,
			Phone:   u.Phone,
			Address: u.Address,
			Status:  u.Status,
		}); err != nil {
			return fmt.Errorf("user %q: %w", u.Email, err)
		}
		l.report["usuarios"]++
	}
	return nil
}

func (l *loader) loadSuppliers(ctx context.Context, ds *Dataset) error {
	for _, s := range ds.Suppliers {
		if _, err := l.suppliers.CreateSupplier(ctx, &supplierdto.CreateSupplierInput{
			Name:    s.Name,
			Contact: s.Contact,
			Address: s.Address,
			Status:  s.Status,
		}); err != nil {
			return fmt.Errorf("supplier %q: %w", s.Name, err)
		}
		l.report["proveedores"]++
	}
	return nil
}

func (l *loader) loadMaterials(ctx context.Context, ds *Dataset) error {
	for _, m := range ds.Materials {
		if _, err := l.materials.CreateMaterial(ctx, &materialdto.CreateMaterialInput{
			Name:        m.Name,
			Description: m.Description,
			Status:      m.Status,
		}); err != nil {
			return fmt.Errorf("material %q: %w", m.Name, err)
		}
		l.report["materiales"]++
	}
	return nil
}

func (l *loader) loadProducts(ctx context.Context, ds *Dataset) error {
	for _, p := range ds.Products {
		in := &productdto.CreateProductInput{
			Name:        p.Name,
			Description: p.Description,
			Stock:       p.Stock,
			Status:      p.Status,
		}

		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("product %q: invalid price %q: %w", p.Name, p.Price, err)
		}
		in.Price = price

		if p.Category != "" {
			cat, err := l.categories.GetCategoryByName(ctx, p.Category)
			if err != nil {
				return fmt.Errorf("product %q: category %q: %w", p.Name, p.Category, err)
			}
			in.CategoryID = &cat.ID
		}

		if p.ReleaseDate != "" {
			release, err := model.ParseDay(p.ReleaseDate)
			if err != nil {
				return fmt.Errorf("product %q: invalid release date: %w", p.Name, err)
			}
			in.ReleaseDate = &release
		}

		if _, err := l.products.CreateProduct(ctx, in); err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
		l.report["productos"]++
	}
	return nil
}

func (l *loader) productID(ctx context.Context, name string) (int64, error) {
	p, err := l.products.GetProductByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("product %q: %w", name, err)
	}
	return p.ID, nil
}

func (l *loader) loadSensors(ctx context.Context, ds *Dataset) error {
	for _, s := range ds.Sensors {
		productID, err := l.productID(ctx, s.Product)
		if err != nil {
			return err
		}
		if _, err := l.sensors.CreateSensor(ctx, &sensordto.CreateSensorInput{
			ProductID:      productID,
			Type:           s.Type,
			Specifications: s.Specifications,
			Status:         s.Status,
		}); err != nil {
			return fmt.Errorf("sensor %q: %w", s.Type, err)
		}
		l.report["sensores"]++
	}
	return nil
}

func (l *loader) loadTests(ctx context.Context, ds *Dataset) error {
	for _, t := range ds.Tests {
		productID, err := l.productID(ctx, t.Product)
		if err != nil {
			return err
		}
		date, err := model.ParseDay(t.Date)
		if err != nil {
			return fmt.Errorf("test for %q: invalid date: %w", t.Product, err)
		}
		if _, err := l.tests.CreateTest(ctx, &testdto.CreateTestInput{
			ProductID:   productID,
			Description: t.Description,
			Results:     t.Results,
			Status:      t.Status,
			Date:        date,
		}); err != nil {
			return fmt.Errorf("test for %q: %w", t.Product, err)
		}
		l.report["pruebas"]++
	}
	return nil
}

func (l *loader) loadSales(ctx context.Context, ds *Dataset) error {
	for _, s := range ds.Sales {
		u, err := l.users.GetUserByEmail(ctx, s.User)
		if err != nil {
			return fmt.Errorf("user %q: %w", s.User, err)
		}
		productID, err := l.productID(ctx, s.Product)
		if err != nil {
			return err
		}
		total, err := decimal.NewFromString(s.Total)
		if err != nil {
			return fmt.Errorf("sale for %q: invalid total %q: %w", s.User, s.Total, err)
		}

		in := &saledto.CreateSaleInput{
			UserID:    u.ID,
			ProductID: productID,
			Quantity:  s.Quantity,
			Total:     total,
			Status:    s.Status,
		}
		if s.Date != "" {
			date, err := time.Parse(time.RFC3339, s.Date)
			if err != nil {
				return fmt.Errorf("sale for %q: invalid date: %w", s.User, err)
			}
			in.Date = &date
		}

		if _, err := l.sales.CreateSale(ctx, in); err != nil {
			return fmt.Errorf("sale for %q: %w", s.User, err)
		}
		l.report["ventas"]++
	}
	return nil
}

func (l *loader) loadProductMaterials(ctx context.Context, ds *Dataset) error {
	for _, pm := range ds.ProductMaterials {
		productID, err := l.productID(ctx, pm.Product)
		if err != nil {
			return err
		}
		m, err := l.materials.GetMaterialByName(ctx, pm.Material)
		if err != nil {
			return fmt.Errorf("material %q: %w", pm.Material, err)
		}
		quantity, err := decimal.NewFromString(pm.QuantityUsed)
		if err != nil {
			return fmt.Errorf("%s/%s: invalid quantity %q: %w", pm.Product, pm.Material, pm.QuantityUsed, err)
		}

		if _, err := l.productMaterials.CreateProductMaterial(ctx, &pmdto.ProductMaterialInput{
			ProductID:    productID,
			MaterialID:   m.ID,
			QuantityUsed: quantity,
		}); err != nil {
			return fmt.Errorf("%s/%s: %w", pm.Product, pm.Material, err)
		}
		l.report["producto_material"]++
	}
	return nil
}
