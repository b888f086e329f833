package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/paging"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/repositories"
	"bespokedbikes/internal/utils"

	"github.com/shopspring/decimal"
)

type SeedOptions struct {
	Products     int
	Salespersons int
	Customers    int
	Sales        int
	Discounts    int
	// RandSeed makes the generated data reproducible.
	RandSeed uint64
	Now      time.Time
}

func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Products:     50,
		Salespersons: 10,
		Customers:    25,
		Sales:        10,
		Discounts:    10,
		RandSeed:     1,
		Now:          time.Now(),
	}
}

// SeedReport is the number of rows inserted per table; tables that already
// had rows are left alone and report 0.
type SeedReport map[string]int

var (
	firstNames    = []string{"Avery", "Blake", "Casey", "Devon", "Emerson", "Finley", "Harper", "Jordan", "Kendall", "Morgan", "Parker", "Quinn", "Riley", "Sawyer", "Taylor"}
	lastNames     = []string{"Anderson", "Brooks", "Carter", "Diaz", "Ellis", "Foster", "Garcia", "Hughes", "Kim", "Lopez", "Nguyen", "Patel", "Reyes", "Shaw", "Walker"}
	streets       = []string{"Main St", "Oak Ave", "Pine Rd", "Maple Dr", "Cedar Ln", "Elm St", "Lakeview Blvd"}
	cities        = []string{"Austin", "Denver", "Portland", "Madison", "Boulder", "Asheville", "Tucson"}
	states        = []string{"TX", "CO", "OR", "WI", "CO", "NC", "AZ"}
	manufacturers = []string{"Trek", "Specialized", "Cannondale", "Giant", "Santa Cruz", "Surly", "Brompton"}
	styles        = []string{"Road", "Mountain", "Gravel", "Hybrid", "Cruiser", "Folding", "BMX"}
	bikeModels    = []string{"Domane", "Rockhopper", "Topstone", "Escape", "Chameleon", "Straggler", "C Line", "Marlin", "Allez", "Talon"}
)

// Seed fills empty tables with sample data through the repositories, in
// dependency order so sales and discounts reference real rows.
func Seed(ctx context.Context, repos repositories.Repositories, opts SeedOptions) (SeedReport, error) {
	r := rand.New(rand.NewPCG(opts.RandSeed, opts.RandSeed^0x9e3779b97f4a7c15))
	report := SeedReport{}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	products, n, err := seedTable[models.Product](ctx, repos.Products, opts.Products, func() *models.Product {
		sale := r.IntN(50001)
		cost := decimal.NewFromInt(int64(sale)).Mul(decimal.NewFromFloat(0.70 + r.Float64()*0.25)).IntPart()
		return &models.Product{
			Name:                 pick(r, bikeModels) + " " + fmt.Sprint(r.IntN(9)+1),
			Manufacturer:         pick(r, manufacturers),
			Style:                pick(r, styles),
			SalePrice:            sale,
			PurchasePrice:        int(cost),
			QuantityOnHand:       r.IntN(496) + 5,
			CommissionPercentage: r.IntN(21) + 10,
		}
	})
	if err != nil {
		return report, err
	}
	report["products"] = n

	salespersons, n, err := seedTable[models.Salesperson](ctx, repos.Salespersons, opts.Salespersons, func() *models.Salesperson {
		first, last, addr, city, state, phone := person(r)
		start := opts.Now.AddDate(0, 0, -r.IntN(3650)-30)
		return &models.Salesperson{
			FirstName: first, LastName: last, Address1: addr, City: city, State: state,
			PostalCode: fmt.Sprintf("%05d", r.IntN(99999)), PhoneNumber: phone,
			StartDate: &start,
			Manager:   pick(r, firstNames) + " " + pick(r, lastNames),
		}
	})
	if err != nil {
		return report, err
	}
	report["salespersons"] = n

	customers, n, err := seedTable[models.Customer](ctx, repos.Customers, opts.Customers, func() *models.Customer {
		first, last, addr, city, state, phone := person(r)
		start := opts.Now.AddDate(0, 0, -r.IntN(1825))
		return &models.Customer{
			FirstName: first, LastName: last, Address1: addr, City: city, State: state,
			PostalCode: fmt.Sprintf("%05d", r.IntN(99999)), PhoneNumber: phone,
			StartDate: &start,
		}
	})
	if err != nil {
		return report, err
	}
	report["customers"] = n

	if len(products) > 0 && len(salespersons) > 0 && len(customers) > 0 {
		_, n, err = seedTable[models.Sale](ctx, repos.Sales, opts.Sales, func() *models.Sale {
			date := opts.Now.AddDate(0, 0, -r.IntN(365))
			return &models.Sale{
				ProductID:     pick(r, products).ProductID,
				SalespersonID: pick(r, salespersons).SalespersonID,
				CustomerID:    pick(r, customers).CustomerID,
				SaleDate:      &date,
			}
		})
		if err != nil {
			return report, err
		}
		report["sales"] = n
	}

	if len(products) > 0 {
		_, n, err = seedTable[models.Discount](ctx, repos.Discounts, opts.Discounts, func() *models.Discount {
			begin := opts.Now.AddDate(0, 0, -r.IntN(180)-1)
			end := opts.Now.AddDate(0, 0, r.IntN(180)+1)
			return &models.Discount{
				ProductID:          pick(r, products).ProductID,
				BeginDate:          &begin,
				EndDate:            &end,
				DiscountPercentage: decimal.NewNullDecimal(decimal.New(int64(r.IntN(31)), -2)),
			}
		})
		if err != nil {
			return report, err
		}
		report["discounts"] = n
	}

	utils.InfoWithFields("seed finished", utils.Fields{
		"products": report["products"], "salespersons": report["salespersons"],
		"customers": report["customers"], "sales": report["sales"], "discounts": report["discounts"],
	})
	return report, nil
}

// seedTable inserts count generated rows when the table is empty. It returns
// rows usable as references: the new ones, or the first page of existing ones.
func seedTable[T any](ctx context.Context, repo repositories.Repository[T], count int, gen func() *T) ([]*T, int, error) {
	existing, err := repo.List(ctx, query.Parameters{Params: paging.Params{PageSize: paging.MaxPageSize}})
	if err != nil {
		return nil, 0, err
	}
	if existing.TotalCount > 0 || count <= 0 {
		return existing.Items, 0, nil
	}

	rows := make([]*T, 0, count)
	for range count {
		rows = append(rows, gen())
	}

	// One transaction per page of rows.
	for p := (paging.Params{PageNumber: 1, PageSize: paging.MaxPageSize}); ; p.PageNumber++ {
		batch := paging.FromSlice(rows, p)
		for _, e := range batch.Items {
			if err := repo.Add(e); err != nil {
				return nil, 0, err
			}
		}
		if _, err := repo.Save(ctx); err != nil {
			return nil, 0, err
		}
		if !batch.HasNext() {
			break
		}
	}
	return rows, count, nil
}

func person(r *rand.Rand) (first, last, addr, city, state, phone string) {
	i := r.IntN(len(cities))
	return pick(r, firstNames), pick(r, lastNames),
		fmt.Sprintf("%d %s", r.IntN(9000)+100, pick(r, streets)),
		cities[i], states[i],
		fmt.Sprintf("555-%04d", r.IntN(10000))
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}
