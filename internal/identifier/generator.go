// Package identifier sinh các mã định danh đọc được cho người dùng
// (số hợp đồng, mã thành viên, mã cửa hàng, mã nhân viên, mã yêu cầu bảo hành).
//
// Generator sinh mã ngẫu nhiên rồi probe storage để kiểm tra trùng, lặp lại
// cho tới khi tìm được mã chưa dùng. Probe chỉ mang tính tư vấn: hai request
// đồng thời vẫn có thể sinh trùng mã, unique index ở storage mới là chốt chặn
// thật. Caller insert phải xem duplicate key trên field mã là transient và
// sinh lại mã mới.
package identifier

import (
	"context"
	"fmt"
	"math/rand"
)

// Kind xác định loại mã định danh cần sinh
type Kind int

const (
	KindPolicy Kind = iota // Số hợp đồng: 7 chữ số trong [1000000, 9999999], không prefix
	KindMember             // Mã thành viên: SMC + 6 chữ số trong [100000, 999999]
	KindShop               // Mã cửa hàng: SMP + 6 chữ số trong [100000, 999999]
	KindStaff              // Mã nhân viên: STF + 3 chữ số (zero-padded)
	KindClaim              // Mã yêu cầu bảo hành: SML + 6 chữ số trong [100000, 999999]
)

// ExistsFunc probe storage xem mã đã được dùng chưa.
// Thường bind vào DocumentExists của collection tương ứng.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// format mô tả cách sinh mã cho một Kind
type format struct {
	prefix string
	min    int64 // Giá trị nhỏ nhất của phần số
	max    int64 // Giá trị lớn nhất của phần số
	width  int   // Độ rộng zero-padding của phần số
}

var formats = map[Kind]format{
	KindPolicy: {prefix: "", min: 1000000, max: 9999999, width: 7},
	KindMember: {prefix: "SMC", min: 100000, max: 999999, width: 6},
	KindShop:   {prefix: "SMP", min: 100000, max: 999999, width: 6},
	KindStaff:  {prefix: "STF", min: 0, max: 999, width: 3},
	KindClaim:  {prefix: "SML", min: 100000, max: 999999, width: 6},
}

// Generator sinh mã định danh duy nhất cho một loại tài nguyên
type Generator struct {
	kind   Kind
	exists ExistsFunc
	rng    *rand.Rand
}

// NewGenerator tạo generator cho kind với probe function.
// Truyền rng nil để dùng nguồn ngẫu nhiên mặc định.
func NewGenerator(kind Kind, exists ExistsFunc, rng *rand.Rand) (*Generator, error) {
	if _, ok := formats[kind]; !ok {
		return nil, fmt.Errorf("unknown identifier kind: %d", kind)
	}
	if exists == nil {
		return nil, fmt.Errorf("exists probe is required")
	}
	return &Generator{kind: kind, exists: exists, rng: rng}, nil
}

// Format trả về chuỗi mã từ phần số theo format của kind
func (g *Generator) Format(n int64) string {
	f := formats[g.kind]
	return fmt.Sprintf("%s%0*d", f.prefix, f.width, n)
}

// random sinh phần số ngẫu nhiên phân bố đều trong [min, max]
func (g *Generator) random() int64 {
	f := formats[g.kind]
	span := f.max - f.min + 1
	if g.rng != nil {
		return f.min + g.rng.Int63n(span)
	}
	return f.min + rand.Int63n(span)
}

// Generate sinh một mã chưa được dùng theo probe.
// Lặp không giới hạn cho tới khi tìm được mã trống hoặc context bị hủy;
// không gian mã còn rộng nên số lần lặp kỳ vọng rất thấp.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		id := g.Format(g.random())

		taken, err := g.exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("identifier probe failed: %w", err)
		}
		if !taken {
			return id, nil
		}
	}
}
