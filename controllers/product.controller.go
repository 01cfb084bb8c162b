package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"swiftcart-backend/cache"
	"swiftcart-backend/models"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const searchPageSize = 8

// NewProduct handles product creation by an admin.
func (ctrl *Controller) NewProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.NewProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "All fields are required", http.StatusBadRequest)
		return
	}

	product := models.Product{
		Title:     req.Title,
		Price:     req.Price,
		Stock:     req.Stock,
		Category:  strings.ToLower(req.Category),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(ctx, req.PictureBase64, uploader.UploadParams{Folder: "swiftcart/products"})
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			fail(c, "Failed to upload product picture", http.StatusInternalServerError)
			return
		}
		product.Picture = uploadResult.PublicID
		product.PictureURL = uploadResult.SecureURL
	}

	result, err := ctrl.DB.Collection("products").InsertOne(ctx, product)
	if err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}
	product.ID = result.InsertedID.(primitive.ObjectID)

	ctrl.Cache.Invalidate(cache.Invalidation{Product: true, Admin: true})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product Created Successfully!",
		"product": product,
	})
}

// GetLatestProducts returns the five newest products, read through the
// latest-products cache entry.
func (ctrl *Controller) GetLatestProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, ok := cache.GetJSON[[]models.Product](ctrl.Cache, cache.KeyLatestProducts)
	if !ok {
		opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(5)
		cursor, err := ctrl.DB.Collection("products").Find(ctx, bson.M{}, opts)
		if err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		if err = cursor.All(ctx, &products); err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		cache.SetJSON(ctrl.Cache, cache.KeyLatestProducts, products)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Latest Products Fetched Successfully!",
		"products": products,
	})
}

// GetCategories returns the distinct product categories, read through the
// categories cache entry.
func (ctrl *Controller) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories, ok := cache.GetJSON[[]string](ctrl.Cache, cache.KeyCategories)
	if !ok {
		var err error
		categories, err = ctrl.distinctCategories(ctx)
		if err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		cache.SetJSON(ctrl.Cache, cache.KeyCategories, categories)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Product Categories Fetched Successfully!",
		"categories": categories,
	})
}

// GetAdminProducts returns every product, read through the all-products
// cache entry.
func (ctrl *Controller) GetAdminProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, ok := cache.GetJSON[[]models.Product](ctrl.Cache, cache.KeyAllProducts)
	if !ok {
		cursor, err := ctrl.DB.Collection("products").Find(ctx, bson.M{})
		if err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		if err = cursor.All(ctx, &products); err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		cache.SetJSON(ctrl.Cache, cache.KeyAllProducts, products)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// GetProduct returns a single product by id, read through its per-product
// cache entry.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		fail(c, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, ok := cache.GetJSON[models.Product](ctrl.Cache, cache.ProductKey(id))
	if !ok {
		err = ctrl.DB.Collection("products").FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				fail(c, "Product Not Found", http.StatusNotFound)
				return
			}
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}
		cache.SetJSON(ctrl.Cache, cache.ProductKey(id), product)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Single Product Fetched Successfully!",
		"product": product,
	})
}

// UpdateProduct handles a partial product update by an admin.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		fail(c, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err.Error(), http.StatusBadRequest)
		return
	}

	collection := ctrl.DB.Collection("products")
	var product models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			fail(c, "Product Not Found", http.StatusNotFound)
			return
		}
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if req.PictureBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(ctx, req.PictureBase64, uploader.UploadParams{Folder: "swiftcart/products"})
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			fail(c, "Failed to upload product picture", http.StatusInternalServerError)
			return
		}
		if product.Picture != "" {
			if _, err := ctrl.Cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: product.Picture}); err != nil {
				log.Println("Cloudinary destroy error:", err)
			}
		}
		product.Picture = uploadResult.PublicID
		product.PictureURL = uploadResult.SecureURL
	}

	if req.Title != "" {
		product.Title = req.Title
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != "" {
		product.Category = strings.ToLower(req.Category)
	}
	product.UpdatedAt = time.Now()

	if _, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": product}); err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	ctrl.Cache.Invalidate(cache.Invalidation{Product: true, Admin: true, ProductIDs: []string{id}})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product Updated Successfully!",
		"product": product,
	})
}

// DeleteProduct handles product deletion by an admin, removing the
// product picture from Cloudinary along with the document.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		fail(c, "Invalid product ID", http.StatusBadRequest)
		return
	}

	collection := ctrl.DB.Collection("products")
	var product models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			fail(c, "Product Not Found", http.StatusNotFound)
			return
		}
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if product.Picture != "" && ctrl.Cld != nil {
		if _, err := ctrl.Cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: product.Picture}); err != nil {
			log.Println("Cloudinary destroy error:", err)
		}
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	ctrl.Cache.Invalidate(cache.Invalidation{Product: true, Admin: true, ProductIDs: []string{id}})

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": "Product Deleted Successfully!",
		"product": product,
	})
}

// SearchProducts returns a filtered, paginated product listing. Results
// are not cached; every combination of filters would need its own entry.
func (ctrl *Controller) SearchProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if search := c.Query("search"); search != "" {
		filter["title"] = bson.M{"$regex": search, "$options": "i"}
	}
	if price := c.Query("price"); price != "" {
		maxPrice, err := strconv.ParseFloat(price, 64)
		if err != nil {
			fail(c, "Invalid price filter", http.StatusBadRequest)
			return
		}
		filter["price"] = bson.M{"$lte": maxPrice}
	}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	opts := options.Find().
		SetLimit(searchPageSize).
		SetSkip(int64((page - 1) * searchPageSize))
	if sort := c.Query("sort"); sort != "" {
		direction := -1
		if sort == "lowToHigh" {
			direction = 1
		}
		opts.SetSort(bson.M{"price": direction})
	}

	collection := ctrl.DB.Collection("products")

	var products []models.Product
	var total int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := collection.Find(gctx, filter, opts)
		if err != nil {
			return err
		}
		return cursor.All(gctx, &products)
	})
	g.Go(func() error {
		var err error
		total, err = collection.CountDocuments(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, err.Error(), http.StatusInternalServerError)
		return
	}

	totalPages := (total + searchPageSize - 1) / searchPageSize

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"products":   products,
		"totalPages": totalPages,
	})
}

// distinctCategories returns the distinct category values of the products
// collection, in store order.
func (ctrl *Controller) distinctCategories(ctx context.Context) ([]string, error) {
	raw, err := ctrl.DB.Collection("products").Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}
