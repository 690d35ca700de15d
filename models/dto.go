package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateOrderRequest struct {
	AddressID int `json:"address_id"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type CreateProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	CategoryID  int    `json:"category_id" form:"category_id"`
	BrandID     int    `json:"brand_id" form:"brand_id"`
	Price       int    `json:"price" form:"price" binding:"required,gt=0"`
	SalePrice   int    `json:"sale_price" form:"sale_price"`
	Stock       int    `json:"stock" form:"stock" binding:"gte=0"`
	Weight      int    `json:"weight" form:"weight" binding:"gte=0"`
	IsActive    bool   `json:"is_active" form:"is_active"`
}

type UpdateProductRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	CategoryID  int    `json:"category_id" form:"category_id"`
	BrandID     int    `json:"brand_id" form:"brand_id"`
	Price       int    `json:"price" form:"price"`
	SalePrice   int    `json:"sale_price" form:"sale_price"`
	Stock       int    `json:"stock" form:"stock"`
	Weight      int    `json:"weight" form:"weight"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}

type CreateBrandRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}

type UpdateShippingRequest struct {
	CourierName           string `json:"courier_name" binding:"required"`
	TrackingNumber        string `json:"tracking_number" binding:"required"`
	ServiceType           string `json:"service_type"`
	ShippingCost          int    `json:"shipping_cost"`
	EstimatedDeliveryDate string `json:"estimated_delivery_date"`
	Notes                 string `json:"notes"`
}
