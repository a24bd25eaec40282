package routes

import (
	"errors"

	"menuapi/db"
	"menuapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductResponse is the wire shape of a single product, ratings and
// topping names included.
type ProductResponse struct {
	ProductID          uint      `json:"product_id"`
	ProductName        string    `json:"product_name"`
	ProductDescription string    `json:"product_description"`
	ProductPrice       float64   `json:"product_price"`
	ProductCategory    string    `json:"product_category"`
	ProductType        string    `json:"product_type"`
	ProductRating      []float64 `json:"product_rating"`
	ProductToppings    []string  `json:"product_toppings"`
}

type ProductListResponse struct {
	Products     []ProductResponse `json:"products"`
	Total        int               `json:"total"`
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
	NextPage     *int              `json:"next_page"`
	PreviousPage *int              `json:"previous_page"`
}

func SetupRoutes(app *fiber.App) {
	// Product routes
	products := app.Group("/products")
	products.Get("/", getAllProducts)
	products.Post("/create", createProduct)
	products.Get("/:id", getProduct)
	products.Put("/:id", updateProduct)
	products.Patch("/:id", updateProduct)
	products.Delete("/:id", deleteProduct)
}

// productToWire attaches the product's rating values (in storage order)
// and distinct topping names to its wire representation. Empty arrays,
// never null.
func productToWire(p models.Product) (ProductResponse, error) {
	resp := ProductResponse{
		ProductID:          p.ID,
		ProductName:        p.Name,
		ProductDescription: p.Description,
		ProductPrice:       p.Price,
		ProductCategory:    p.Category,
		ProductType:        p.Type,
		ProductRating:      []float64{},
		ProductToppings:    []string{},
	}

	var ratings []models.Rating
	if err := db.DB.Where("product_id = ?", p.ID).Order("id").Find(&ratings).Error; err != nil {
		return resp, err
	}
	for _, r := range ratings {
		resp.ProductRating = append(resp.ProductRating, r.Value)
	}

	var names []string
	if err := db.DB.Model(&models.Topping{}).
		Joins("JOIN product_toppings ON product_toppings.topping_id = toppings.id").
		Where("product_toppings.product_id = ?", p.ID).
		Distinct().Order("toppings.name").
		Pluck("toppings.name", &names).Error; err != nil {
		return resp, err
	}
	resp.ProductToppings = append(resp.ProductToppings, names...)

	return resp, nil
}

// GetAllProducts - GET /products
func getAllProducts(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var products []models.Product
	query := filter.apply(db.DB.Model(&models.Product{}))
	if err := query.Distinct("products.*").Order("products.id").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No products found",
		})
	}

	params := parsePageParams(c)
	page := paginate(products, params)

	results := make([]ProductResponse, 0, len(page))
	for _, p := range page {
		resp, err := productToWire(p)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load product details",
			})
		}
		results = append(results, resp)
	}

	next, previous := pageMarkers(len(products), params)
	return c.JSON(ProductListResponse{
		Products:     results,
		Total:        len(products),
		Page:         params.Page,
		PageSize:     params.PageSize,
		NextPage:     next,
		PreviousPage: previous,
	})
}

// CreateProduct - POST /products/create
func createProduct(c *fiber.Ctx) error {
	input := new(productInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationErrors(err))
	}

	var product models.Product
	input.apply(&product)
	if err := db.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	resp, err := productToWire(product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load product details",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetProduct - GET /products/:id
func getProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Product not found.",
		})
	}

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"detail": "Product not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product",
		})
	}

	resp, err := productToWire(product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load product details",
		})
	}
	return c.JSON(resp)
}

// UpdateProduct - PUT/PATCH /products/:id
func updateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Product not found.",
		})
	}

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"detail": "Product not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product",
		})
	}

	input := new(productInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid data",
			"errors": map[string][]string{
				"non_field_errors": {"Failed to parse request body"},
			},
		})
	}

	// Merge the partial input, then validate the whole entity
	merged := product
	input.apply(&merged)
	if err := validate.Struct(inputFromProduct(&merged)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid data",
			"errors": validationErrors(err),
		})
	}

	if err := db.DB.Save(&merged).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	resp, err := productToWire(merged)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load product details",
		})
	}
	return c.JSON(resp)
}

// DeleteProduct - DELETE /products/:id
func deleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Product not found.",
		})
	}

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"detail": "Product not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product",
		})
	}

	// Take the ratings and junction rows down with the product
	if err := db.DB.Select(clause.Associations).Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Failed to delete the product.",
			"error":  err.Error(),
		})
	}

	return c.Status(fiber.StatusNoContent).JSON(fiber.Map{
		"detail": "Product deleted successfully.",
	})
}
