package service

import (
	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	LineTotal models.Money    `json:"line_total"`
	Currency  string          `json:"currency"`
	Product   *models.Product `json:"product"`
}

// CartSummary 购物车汇总
type CartSummary struct {
	Items         []CartItemDetail `json:"items"`
	TotalQuantity int              `json:"total_quantity"`
	Subtotal      models.Money     `json:"subtotal"`
	Currency      string           `json:"currency"`
}

// CartService 购物车服务
// 所有写操作以会话为粒度；加购成功后会展开购物车面板。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	sessionRepo repository.SessionRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, sessionRepo repository.SessionRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		sessionRepo: sessionRepo,
	}
}

// AddItem 加购；同一商品重复加购只递增数量，成功后展开购物车面板
func (s *CartService) AddItem(sessionID string, productID uint, quantity int) error {
	if sessionID == "" || productID == 0 {
		return ErrInvalidCartItem
	}
	if quantity <= 0 {
		quantity = 1
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	// 定制海报不在目录上架（is_active=false），但允许加购
	if product == nil || (!product.IsActive && !product.IsCustom) {
		return ErrProductNotAvailable
	}

	existing, err := s.cartRepo.GetBySessionAndProduct(sessionID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		if err := s.cartRepo.UpdateQuantity(existing, existing.Quantity+quantity); err != nil {
			return err
		}
	} else {
		item := &models.CartItem{
			SessionID: sessionID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return err
		}
	}
	return s.openCartPanel(sessionID)
}

// AdjustQuantity 调整数量；结果恒不低于 1，条目不存在时静默忽略
func (s *CartService) AdjustQuantity(sessionID string, productID uint, delta int) error {
	if sessionID == "" || productID == 0 {
		return ErrInvalidCartItem
	}
	item, err := s.cartRepo.GetBySessionAndProduct(sessionID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}
	quantity := item.Quantity + delta
	if quantity < 1 {
		quantity = 1
	}
	if quantity == item.Quantity {
		return nil
	}
	return s.cartRepo.UpdateQuantity(item, quantity)
}

// RemoveItem 移除购物车项；条目不存在时为幂等成功
func (s *CartService) RemoveItem(sessionID string, productID uint) error {
	if sessionID == "" || productID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.DeleteBySessionAndProduct(sessionID, productID)
}

// Clear 清空会话购物车
func (s *CartService) Clear(sessionID string) error {
	if sessionID == "" {
		return ErrInvalidCartItem
	}
	return s.cartRepo.ClearBySession(sessionID)
}

// Summary 购物车汇总（逐项小计与总价）
func (s *CartService) Summary(sessionID string) (*CartSummary, error) {
	if sessionID == "" {
		return nil, ErrInvalidCartItem
	}
	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{
		Items:    make([]CartItemDetail, 0, len(items)),
		Currency: constants.SiteCurrency,
	}
	subtotal := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil {
			_ = s.cartRepo.DeleteBySessionAndProduct(sessionID, item.ProductID)
			continue
		}

		lineTotal := product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		summary.TotalQuantity += item.Quantity
		summary.Items = append(summary.Items, CartItemDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.PriceAmount,
			LineTotal: models.NewMoneyFromDecimal(lineTotal),
			Currency:  constants.SiteCurrency,
			Product:   product,
		})
	}
	summary.Subtotal = models.NewMoneyFromDecimal(subtotal)
	return summary, nil
}

// openCartPanel 展开购物车面板
func (s *CartService) openCartPanel(sessionID string) error {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.CartOpen {
		return nil
	}
	session.CartOpen = true
	return s.sessionRepo.Update(session)
}
