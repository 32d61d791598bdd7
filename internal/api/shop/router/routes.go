// Package router đăng ký các route thuộc domain shop.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/silmemobile104/smilecare/internal/api/router"
	shophdl "github.com/silmemobile104/smilecare/internal/api/shop/handler"
)

// Register đăng ký tất cả route shop lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := shophdl.NewShopHandler()
	if err != nil {
		return fmt.Errorf("tạo ShopHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/shops", handler, apirouter.ReadWriteConfig)

	return nil
}
