// Package models - Constants cho gói bảo hiểm (plan catalogue).
package models

// PlanID là mã gói bảo hiểm. Tập đóng: giá và loại gói luôn lấy từ catalogue,
// không bao giờ nhận từ payload.
type PlanID string

const (
	PlanFullA PlanID = "FULL_A"
	PlanFullB PlanID = "FULL_B"
	PlanFullC PlanID = "FULL_C"
	PlanFullD PlanID = "FULL_D"

	PlanScreenA PlanID = "SCREEN_A"
	PlanScreenB PlanID = "SCREEN_B"
	PlanScreenC PlanID = "SCREEN_C"
)

// Loại gói bảo hiểm.
const (
	PlanCategoryFull   = "full-protection" // Bảo hiểm toàn diện
	PlanCategoryScreen = "screen-only"     // Bảo hiểm màn hình
)

// PlanInfo chứa thuộc tính của một gói trong catalogue
type PlanInfo struct {
	Name     string // Tên hiển thị
	Price    int64  // Giá gói (THB, số nguyên)
	Category string
}

// PlanCatalogue là bảng giá cố định của các gói bảo hiểm.
var PlanCatalogue = map[PlanID]PlanInfo{
	PlanFullA: {Name: "Full Protection A", Price: 799, Category: PlanCategoryFull},
	PlanFullB: {Name: "Full Protection B", Price: 1499, Category: PlanCategoryFull},
	PlanFullC: {Name: "Full Protection C", Price: 1699, Category: PlanCategoryFull},
	PlanFullD: {Name: "Full Protection D", Price: 2399, Category: PlanCategoryFull},

	PlanScreenA: {Name: "Screen Protection A", Price: 599, Category: PlanCategoryScreen},
	PlanScreenB: {Name: "Screen Protection B", Price: 999, Category: PlanCategoryScreen},
	PlanScreenC: {Name: "Screen Protection C", Price: 1299, Category: PlanCategoryScreen},
}

// ResolvePlan tra cứu gói từ catalogue. Trả về false nếu planId không tồn tại.
func ResolvePlan(id PlanID) (PlanInfo, bool) {
	info, ok := PlanCatalogue[id]
	return info, ok
}
