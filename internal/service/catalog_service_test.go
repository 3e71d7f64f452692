package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	mock_backend "github.com/RoyceAzure/lab/santoral/internal/infra/backend/mock"
	"github.com/RoyceAzure/lab/santoral/internal/infra/cache"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	mock_service "github.com/RoyceAzure/lab/santoral/internal/service/mock"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	ctrl    *gomock.Controller
	api     *mock_backend.MockICatalogAPI
	addr    string
	cache   *cache.RedisCache
	catalog *CatalogService
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.addr = s.mr.Addr()
	s.ctrl = gomock.NewController(s.T())
	s.api = mock_backend.NewMockICatalogAPI(s.ctrl)
	s.cache = cache.NewRedisCache(cache.GetRedisClient(s.addr), "catalog")
	s.catalog = NewCatalogService(s.api, s.cache, time.Minute, nil)
}

func (s *CatalogServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.Require().NoError(cache.CloseRedisClient(s.addr))
}

func productsPage() *model.ProductsPage {
	return &model.ProductsPage{
		Page:  1,
		Limit: 30,
		Total: 1,
		Products: []model.Product{{
			ID:    "p1",
			Name:  "Virgen del Carmen",
			Price: decimal.RequireFromString("85000.50"),
		}},
	}
}

func (s *CatalogServiceTestSuite) TestGetProductsReadsThrough() {
	ctx := context.Background()
	s.api.EXPECT().GetProducts(gomock.Any(), 1, 30).Return(productsPage(), nil).Times(1)

	first, err := s.catalog.GetProducts(ctx, 0, 0)
	s.Require().NoError(err)
	s.True(s.mr.Exists("catalog:products:1:30"))

	second, err := s.catalog.GetProducts(ctx, 1, 30)
	s.Require().NoError(err)
	s.Equal(first.Products[0].Name, second.Products[0].Name)
	s.True(first.Products[0].Price.Equal(second.Products[0].Price))
}

func (s *CatalogServiceTestSuite) TestCacheExpiry() {
	ctx := context.Background()
	s.api.EXPECT().GetProducts(gomock.Any(), 1, 30).Return(productsPage(), nil).Times(2)

	_, err := s.catalog.GetProducts(ctx, 1, 30)
	s.Require().NoError(err)
	s.mr.FastForward(2 * time.Minute)
	_, err = s.catalog.GetProducts(ctx, 1, 30)
	s.Require().NoError(err)
}

func (s *CatalogServiceTestSuite) TestBackendErrorIsNotCached() {
	ctx := context.Background()
	gomock.InOrder(
		s.api.EXPECT().GetProductByName(gomock.Any(), "San José").
			Return(nil, apperr.Network(apperr.OpGetProduct, context.DeadlineExceeded)),
		s.api.EXPECT().GetProductByName(gomock.Any(), "San José").
			Return(&model.Product{ID: "p2", Name: "San José"}, nil),
	)

	_, err := s.catalog.GetProductByName(ctx, "San José")
	s.Require().ErrorIs(err, apperr.ErrNetwork)
	s.False(s.mr.Exists("catalog:product:san josé"))

	product, err := s.catalog.GetProductByName(ctx, " San José ")
	s.Require().NoError(err)
	s.Equal("p2", product.ID)
	s.True(s.mr.Exists("catalog:product:san josé"))
}

func (s *CatalogServiceTestSuite) TestCreateProductInvalidatesListings() {
	ctx := context.Background()
	s.api.EXPECT().GetProducts(gomock.Any(), 1, 30).Return(productsPage(), nil).Times(2)
	s.api.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(&model.Product{ID: "p9", Name: "Santa Lucía"}, nil)

	_, err := s.catalog.GetProducts(ctx, 1, 30)
	s.Require().NoError(err)

	_, err = s.catalog.CreateProduct(ctx, model.CreateProductRequest{Name: "Santa Lucía", Price: decimal.NewFromInt(50000)})
	s.Require().NoError(err)
	s.False(s.mr.Exists("catalog:products:1:30"))

	_, err = s.catalog.GetProducts(ctx, 1, 30)
	s.Require().NoError(err)
}

func (s *CatalogServiceTestSuite) TestReviewsAndRating() {
	ctx := context.Background()
	s.api.EXPECT().GetReviews(gomock.Any(), "p1", 1, 5).Return(&model.ReviewsPage{}, nil)
	s.api.EXPECT().GetAverageRating(gomock.Any(), "p1").Return(&model.AverageRating{Average: decimal.RequireFromString("4.5")}, nil)

	_, err := s.catalog.GetReviews(ctx, "p1", 0, 5)
	s.Require().NoError(err)
	rating, err := s.catalog.GetAverageRating(ctx, "p1")
	s.Require().NoError(err)
	s.True(rating.Average.Equal(decimal.RequireFromString("4.5")))
	s.True(s.mr.Exists("catalog:reviews:p1:1:5"))
	s.True(s.mr.Exists("catalog:rating:p1"))

	s.api.EXPECT().CreateReview(gomock.Any(), model.CreateReviewRequest{ProductID: "p1", Rating: 5, Comment: "Hermosa"}).
		Return(&model.Review{ID: "r1", Rating: 5}, nil)
	_, err = s.catalog.CreateReview(ctx, model.CreateReviewRequest{ProductID: "p1", Rating: 5, Comment: "Hermosa"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("catalog:reviews:p1:1:5"))
	s.False(s.mr.Exists("catalog:rating:p1"))
}

func (s *CatalogServiceTestSuite) TestValidation() {
	ctx := context.Background()

	_, err := s.catalog.CreateReview(ctx, model.CreateReviewRequest{ProductID: "p1", Rating: 6})
	s.Require().Error(err)
	s.Equal("La calificación debe estar entre 1 y 5", err.Error())

	_, err = s.catalog.CreateVariants(ctx, "", []model.Variant{{Color: "azul"}})
	s.Require().Error(err)
	s.Equal("El ID del producto es obligatorio", err.Error())

	_, err = s.catalog.CreateVariants(ctx, "p1", nil)
	s.Require().Error(err)
	s.Equal("Se requiere al menos una variante", err.Error())

	_, err = s.catalog.CreateProduct(ctx, model.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-1)})
	s.Require().Error(err)

	_, err = s.catalog.DeleteVariant(ctx, "")
	s.ErrorIs(err, apperr.ErrMissingVariant)
}

func (s *CatalogServiceTestSuite) TestCacheDownFallsBackToBackend() {
	s.mr.Close()
	s.api.EXPECT().GetProducts(gomock.Any(), 2, 10).Return(productsPage(), nil)

	page, err := s.catalog.GetProducts(context.Background(), 2, 10)
	s.Require().NoError(err)
	s.Len(page.Products, 1)
}

func TestAdminProductEditsDropCatalogCache(t *testing.T) {
	mr := miniredis.RunT(t)
	ctrl := gomock.NewController(t)
	api := mock_service.NewMockAdminAPI(ctrl)
	c := cache.NewRedisCache(cache.GetRedisClient(mr.Addr()), "catalog")
	t.Cleanup(func() { _ = cache.CloseRedisClient(mr.Addr()) })

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "products:1:30", []byte("{}"), 0))
	require.NoError(t, c.Set(ctx, "product:virgen del carmen", []byte("{}"), 0))
	require.NoError(t, c.Set(ctx, "rating:p1", []byte("{}"), 0))

	api.EXPECT().UpdateProduct(gomock.Any(), "p1", gomock.Any()).Return(&model.Product{ID: "p1"}, nil)

	admin := NewAdminService(api, c, nil)
	_, err := admin.UpdateProduct(ctx, "p1", model.Product{Name: "Virgen del Carmen"})
	require.NoError(t, err)

	require.False(t, mr.Exists("catalog:products:1:30"))
	require.False(t, mr.Exists("catalog:product:virgen del carmen"))
	require.True(t, mr.Exists("catalog:rating:p1"))
}
