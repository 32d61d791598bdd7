package identifier

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
)

// probe không có mã nào bị chiếm
func noneTaken(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func TestFormatPerKind(t *testing.T) {
	cases := []struct {
		kind    Kind
		n       int64
		want    string
		pattern string
	}{
		{KindPolicy, 1000000, "1000000", `^\d{7}$`},
		{KindPolicy, 9999999, "9999999", `^\d{7}$`},
		{KindMember, 100000, "SMC100000", `^SMC[1-9]\d{5}$`},
		{KindShop, 123456, "SMP123456", `^SMP[1-9]\d{5}$`},
		{KindStaff, 5, "STF005", `^STF\d{3}$`},
		{KindStaff, 999, "STF999", `^STF\d{3}$`},
		{KindClaim, 999999, "SML999999", `^SML[1-9]\d{5}$`},
	}

	for _, tc := range cases {
		gen, err := NewGenerator(tc.kind, noneTaken, nil)
		if err != nil {
			t.Fatalf("NewGenerator(%d): %v", tc.kind, err)
		}
		got := gen.Format(tc.n)
		if got != tc.want {
			t.Errorf("Format(%d) kind %d = %q, muốn %q", tc.n, tc.kind, got, tc.want)
		}
		if !regexp.MustCompile(tc.pattern).MatchString(got) {
			t.Errorf("Format(%d) kind %d = %q không khớp pattern %q", tc.n, tc.kind, got, tc.pattern)
		}
	}
}

func TestGenerateRangeInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gen, err := NewGenerator(KindPolicy, noneTaken, rng)
	if err != nil {
		t.Fatal(err)
	}

	re := regexp.MustCompile(`^[1-9]\d{6}$`)
	for i := 0; i < 500; i++ {
		id, err := gen.Generate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if !re.MatchString(id) {
			t.Fatalf("số hợp đồng %q ngoài khoảng 1000000-9999999", id)
		}
	}
}

// Phần số của các mã 6 chữ số có prefix phải nằm trong [100000, 999999]:
// không có mã kiểu SMC009499 với số 0 dẫn đầu.
func TestGeneratePrefixedRangeInBounds(t *testing.T) {
	cases := []struct {
		kind    Kind
		pattern string
	}{
		{KindMember, `^SMC[1-9]\d{5}$`},
		{KindShop, `^SMP[1-9]\d{5}$`},
		{KindClaim, `^SML[1-9]\d{5}$`},
	}

	for _, tc := range cases {
		rng := rand.New(rand.NewSource(42))
		gen, err := NewGenerator(tc.kind, noneTaken, rng)
		if err != nil {
			t.Fatalf("NewGenerator(%d): %v", tc.kind, err)
		}

		re := regexp.MustCompile(tc.pattern)
		for i := 0; i < 500; i++ {
			id, err := gen.Generate(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if !re.MatchString(id) {
				t.Fatalf("mã %q kind %d có phần số dưới 100000", id, tc.kind)
			}
		}
	}
}

// Sinh 1000 mã thành viên với probe nhớ các mã đã cấp: tất cả phải đúng
// định dạng và không trùng nhau.
func TestGenerateDistinctMembers(t *testing.T) {
	issued := map[string]bool{}
	probe := func(ctx context.Context, id string) (bool, error) {
		return issued[id], nil
	}

	rng := rand.New(rand.NewSource(7))
	gen, err := NewGenerator(KindMember, probe, rng)
	if err != nil {
		t.Fatal(err)
	}

	re := regexp.MustCompile(`^SMC[1-9]\d{5}$`)
	for i := 0; i < 1000; i++ {
		id, err := gen.Generate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if !re.MatchString(id) {
			t.Fatalf("mã thành viên %q sai định dạng", id)
		}
		if issued[id] {
			t.Fatalf("mã thành viên %q bị cấp trùng", id)
		}
		issued[id] = true
	}
}

// Probe báo mã đầu tiên đã bị chiếm thì generator phải thử mã khác.
func TestGenerateRetriesOnTaken(t *testing.T) {
	probes := 0
	probe := func(ctx context.Context, id string) (bool, error) {
		probes++
		return probes == 1, nil
	}

	gen, err := NewGenerator(KindStaff, probe, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}

	id, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if probes < 2 {
		t.Fatalf("generator không probe lại sau khi mã bị chiếm (probes=%d)", probes)
	}
	if !regexp.MustCompile(`^STF\d{3}$`).MatchString(id) {
		t.Fatalf("mã nhân viên %q sai định dạng", id)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	// Probe luôn báo đã chiếm để buộc vòng lặp chạy tới khi context bị hủy
	probe := func(ctx context.Context, id string) (bool, error) {
		return true, nil
	}

	gen, err := NewGenerator(KindClaim, probe, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gen.Generate(ctx); err == nil {
		t.Fatal("muốn lỗi khi context đã bị hủy")
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	if _, err := NewGenerator(Kind(99), noneTaken, nil); err == nil {
		t.Error("muốn lỗi với kind không tồn tại")
	}
	if _, err := NewGenerator(KindMember, nil, nil); err == nil {
		t.Error("muốn lỗi khi thiếu probe")
	}
}
