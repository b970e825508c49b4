package pipeline

import "os"

// DefaultPromo is the fixed promo text used when no promo file exists.
const DefaultPromo = "핀팁스 세미나 Q&A 모음\n매주 업데이트되는 질문과 답변, 실천 팁을 확인하세요.\n새로운 질문은 NEW 표시와 함께 추가됩니다."

// LoadPromo reads the optional promo text file. A missing or unreadable
// file is not an error; the default takes its place.
func LoadPromo(path string) string {
	if path == "" {
		return DefaultPromo
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return DefaultPromo
	}
	return string(blob)
}
