package handlers

import (
	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/dto"
	"bespokedbikes/internal/repositories"
)

var Customers = Resource[models.Customer, dto.CustomerDto, dto.CustomerForCreationDto, dto.CustomerForUpdateDto]{
	Name:         "customer",
	Repo:         func(rs repositories.Repositories) repositories.Repository[models.Customer] { return rs.Customers },
	ID:           func(c *models.Customer) int64 { return c.CustomerID },
	ToDto:        dto.CustomerToDto,
	FromCreation: dto.CustomerFromCreation,
	Apply: func(in dto.CustomerForUpdateDto, c *models.Customer) {
		dto.ApplyCustomer(in.CustomerForManipulationDto, c)
	},
	ToUpdate: dto.CustomerToUpdate,
}

var Products = Resource[models.Product, dto.ProductDto, dto.ProductForCreationDto, dto.ProductForUpdateDto]{
	Name:         "product",
	Repo:         func(rs repositories.Repositories) repositories.Repository[models.Product] { return rs.Products },
	ID:           func(p *models.Product) int64 { return p.ProductID },
	ToDto:        dto.ProductToDto,
	FromCreation: dto.ProductFromCreation,
	Apply: func(in dto.ProductForUpdateDto, p *models.Product) {
		dto.ApplyProduct(in.ProductForManipulationDto, p)
	},
	ToUpdate: dto.ProductToUpdate,
}

var Salespersons = Resource[models.Salesperson, dto.SalespersonDto, dto.SalespersonForCreationDto, dto.SalespersonForUpdateDto]{
	Name:         "salesperson",
	Repo:         func(rs repositories.Repositories) repositories.Repository[models.Salesperson] { return rs.Salespersons },
	ID:           func(s *models.Salesperson) int64 { return s.SalespersonID },
	ToDto:        dto.SalespersonToDto,
	FromCreation: dto.SalespersonFromCreation,
	Apply: func(in dto.SalespersonForUpdateDto, s *models.Salesperson) {
		dto.ApplySalesperson(in.SalespersonForManipulationDto, s)
	},
	ToUpdate: dto.SalespersonToUpdate,
}

var Sales = Resource[models.Sale, dto.SaleDto, dto.SaleForCreationDto, dto.SaleForUpdateDto]{
	Name:         "sale",
	Repo:         func(rs repositories.Repositories) repositories.Repository[models.Sale] { return rs.Sales },
	ID:           func(s *models.Sale) int64 { return s.SaleID },
	ToDto:        dto.SaleToDto,
	FromCreation: dto.SaleFromCreation,
	Apply: func(in dto.SaleForUpdateDto, s *models.Sale) {
		dto.ApplySale(in.SaleForManipulationDto, s)
	},
	ToUpdate: dto.SaleToUpdate,
}

var Discounts = Resource[models.Discount, dto.DiscountDto, dto.DiscountForCreationDto, dto.DiscountForUpdateDto]{
	Name:         "discount",
	Repo:         func(rs repositories.Repositories) repositories.Repository[models.Discount] { return rs.Discounts },
	ID:           func(d *models.Discount) int64 { return d.DiscountID },
	ToDto:        dto.DiscountToDto,
	FromCreation: dto.DiscountFromCreation,
	Apply: func(in dto.DiscountForUpdateDto, d *models.Discount) {
		dto.ApplyDiscount(in.DiscountForManipulationDto, d)
	},
	ToUpdate: dto.DiscountToUpdate,
}
