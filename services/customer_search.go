package services

import (
	"sort"
	"strings"

	"pms/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Tìm khách theo tên gõ không dấu hoặc gõ sai chính tả. Danh sách
// khách của một khách sạn đủ nhỏ để match trong bộ nhớ.

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(norm.NFC.String(input))
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SearchCustomers xếp hạng khách hàng theo độ giống với query. Số điện
// thoại match theo prefix, tên match mờ qua closestmatch + levenshtein.
func SearchCustomers(customers []models.Customer, query string, limit int) []models.Customer {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" || len(customers) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = 10
	}

	// Số điện thoại thì so trực tiếp, không cần match mờ
	if strings.IndexFunc(normalizedQuery, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
		var out []models.Customer
		for _, cus := range customers {
			if strings.HasPrefix(cus.PhoneNumber, normalizedQuery) {
				out = append(out, cus)
			}
			if limit > 0 && len(out) >= limit {
				break
			}
		}
		return out
	}

	names := make([]string, 0, len(customers))
	byName := make(map[string][]models.Customer)
	for _, cus := range customers {
		name := normalizeInput(cus.Name)
		names = append(names, name)
		byName[name] = append(byName[name], cus)
	}

	matcher := createMatcher(names)
	candidates := matcher.ClosestN(normalizedQuery, limit*3)

	type scored struct {
		customer models.Customer
		score    float64
	}
	var ranked []scored
	seen := make(map[uint]bool)
	for _, name := range candidates {
		score := calculateSimilarity(normalizedQuery, name)
		for _, cus := range byName[name] {
			if seen[cus.ID] {
				continue
			}
			seen[cus.ID] = true
			ranked = append(ranked, scored{customer: cus, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var out []models.Customer
	for _, r := range ranked {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, r.customer)
	}
	return out
}
