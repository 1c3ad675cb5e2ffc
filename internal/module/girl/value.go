package girl

import (
	"encoding/json"
	"strconv"
	"strings"

	"escort-cms/internal/model"
)

// ValueKind 字段值的形态标签
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindStringList
	KindGallery
)

// Value 归一化后的字段值，按 Kind 取对应成员
// 不用 any 而用标签联合，让每种字段类型的取值形态在编译期可见
type Value struct {
	Kind     ValueKind
	Str      string
	Num      float64
	NumValid bool // NUMBER 无法解析时为 false，落库为 null
	List     []string
	Gallery  []model.GalleryItem
}

// MarshalJSON 按 Kind 输出原始形态的 JSON
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		if !v.NumValid {
			return []byte("null"), nil
		}
		return json.Marshal(v.Num)
	case KindStringList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case KindGallery:
		if v.Gallery == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Gallery)
	}
	return []byte("null"), nil
}

// Normalize 按字段类型归一化提交值
// 第二个返回值为 false 表示该值不落库（SECTION 或未知类型）
func Normalize(fieldType model.FieldType, raw any) (Value, bool) {
	switch fieldType {
	case model.FieldNumber:
		// 非数字静默丢弃为 null，而不是报错
		if num, ok := toNumber(raw); ok {
			return Value{Kind: KindNumber, Num: num, NumValid: true}, true
		}
		return Value{Kind: KindNumber}, true

	case model.FieldMultiselect:
		switch v := raw.(type) {
		case nil:
			return Value{Kind: KindStringList, List: []string{}}, true
		case []any:
			list := make([]string, 0, len(v))
			for _, item := range v {
				list = append(list, toString(item))
			}
			return Value{Kind: KindStringList, List: list}, true
		default:
			// 标量包装成单元素列表
			return Value{Kind: KindStringList, List: []string{toString(raw)}}, true
		}

	case model.FieldInput, model.FieldTextarea, model.FieldSelect, model.FieldSelectSearch:
		return Value{Kind: KindString, Str: toString(raw)}, true

	case model.FieldGallery:
		// 只接受画廊条目对象列表，其余一律变成空列表
		items, ok := raw.([]any)
		if !ok {
			return Value{Kind: KindGallery, Gallery: []model.GalleryItem{}}, true
		}
		encoded, err := json.Marshal(items)
		if err != nil {
			return Value{Kind: KindGallery, Gallery: []model.GalleryItem{}}, true
		}
		var gallery []model.GalleryItem
		if err := json.Unmarshal(encoded, &gallery); err != nil {
			return Value{Kind: KindGallery, Gallery: []model.GalleryItem{}}, true
		}
		return Value{Kind: KindGallery, Gallery: gallery}, true
	}

	// SECTION 和未知类型不作为值持久化
	return Value{}, false
}

// ValidateRequired 校验全部必填字段，返回所有缺失字段的显示名称
// 一次性聚合所有缺失项，方便前端整体提示，而不是逐个报错
func ValidateRequired(fields []model.GirlField, values map[string]any) []string {
	var missing []string
	for _, f := range fields {
		if f.Type == model.FieldSection || !f.Required {
			continue
		}
		if isEmpty(values[f.Slug]) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// isEmpty 判断提交值是否为空：nil、空白字符串或空列表
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	}
	return false
}

// CoverURL 选取画廊的代表图：优先 cover 标记，其次第一张，空列表没有代表图
func CoverURL(items []model.GalleryItem) (string, bool) {
	for _, item := range items {
		if item.Cover && item.URL != "" {
			return item.URL, true
		}
	}
	if len(items) > 0 && items[0].URL != "" {
		return items[0].URL, true
	}
	return "", false
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		num, err := v.Float64()
		return num, err == nil
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return num, err == nil
	}
	return 0, false
}

func toString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
