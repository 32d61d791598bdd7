// Package utility chứa các hàm tiện ích chuyển đổi dữ liệu dùng chung.
package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct sang map[string]interface{} theo bson tag.
// Dùng khi build update document từ DTO để chỉ ghi các field có mặt.
func ToMap(data interface{}) (map[string]interface{}, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}

	bytes, err := bson.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}

	result := map[string]interface{}{}
	if err := bson.Unmarshal(bytes, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return result, nil
}

// RemoveNilFields loại bỏ các entry có giá trị nil khỏi map.
// DTO update dùng con trỏ cho field optional, field không gửi lên sẽ là nil.
func RemoveNilFields(m map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		result[k] = v
	}
	return result
}
