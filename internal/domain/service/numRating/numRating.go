package numRating

import (
	"fmt"
	"strings"

	"num_market/internal/domain/entity"
)

// Хвост номера, по которому оцениваем красоту.
const tailLength = 4

// CalculateValue оценивает красоту номера по его окончанию
func CalculateValue(number string) entity.Rating {
	if len(number) < tailLength || !isDigits(number) {
		return entity.Rating{Score: 0, Description: "Random", IsLucky: false}
	}

	tail := number[len(number)-tailLength:]

	// 1. Одинаковые цифры в конце (Solid) - ...8888 -> 100%
	if run := solidSuffixLen(number); run >= tailLength {
		return entity.Rating{Score: 100, Description: fmt.Sprintf("Solid x%d (%s)", run, number[len(number)-run:]), IsLucky: true}
	}

	// 2. Повтор тройки (ABCABC) - ...123123 -> 90%
	if len(number) >= 6 && isRepeater(number[len(number)-6:]) {
		return entity.Rating{Score: 90, Description: describe("ABCABC", number[len(number)-6:]), IsLucky: true}
	}

	// 3. Лестница (Ladder) - ...1234, ...4321 -> 85%
	if isLadder(tail) {
		return entity.Rating{Score: 85, Description: describe("Ladder", tail), IsLucky: true}
	}

	// 4. AABB - ...6688 -> 80%
	if tail[0] == tail[1] && tail[2] == tail[3] && tail[1] != tail[2] {
		return entity.Rating{Score: 80, Description: describe("AABB", tail), IsLucky: true}
	}

	// 5. ABAB - ...6868 -> 75%
	if tail[0] == tail[2] && tail[1] == tail[3] && tail[0] != tail[1] {
		return entity.Rating{Score: 75, Description: describe("ABAB", tail), IsLucky: true}
	}

	// 6. AAAB - ...6669 -> 70%
	if isSolid(tail[:3]) && tail[2] != tail[3] {
		return entity.Rating{Score: 70, Description: describe("AAAB", tail), IsLucky: true}
	}

	// 7. Номера со смыслом (爱情号) - 520, 1314 -> 65%
	for _, love := range []string{"1314", "520"} {
		if strings.HasSuffix(number, love) {
			return entity.Rating{Score: 65, Description: describe("Love", love), IsLucky: true}
		}
	}

	// 8. ABC в конце - ...789 -> 60%
	if isLadder(tail[1:]) {
		return entity.Rating{Score: 60, Description: describe("ABC", tail[1:]), IsLucky: true}
	}

	// 9. Красивые окончания (Suffix) - ...888 -> 50%
	if isSolid(tail[1:]) {
		return entity.Rating{Score: 50, Description: describe("Lucky Suffix", tail[1:]), IsLucky: true}
	}

	// 10. Палиндром в конце (Radar) - ...1221 -> 40%
	if isPalindrome(tail) {
		return entity.Rating{Score: 40, Description: describe("Palindrome", tail), IsLucky: true}
	}

	// Обычный номер
	return entity.Rating{Score: 0, Description: "Random", IsLucky: false}
}

func describe(kind, digits string) string {
	return kind + " (" + digits + ")"
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSolid(s string) bool {
	if len(s) == 0 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

func solidSuffixLen(s string) int {
	count := 0
	for i := len(s) - 1; i >= 0 && s[i] == s[len(s)-1]; i-- {
		count++
	}
	return count
}

func isLadder(s string) bool {
	if len(s) < 3 {
		return false
	} // 12 - не лестница

	ascending := true
	descending := true

	for i := 1; i < len(s); i++ {
		curr := int(s[i] - '0')
		prev := int(s[i-1] - '0')

		if curr != prev+1 {
			ascending = false
		}
		if curr != prev-1 {
			descending = false
		}
	}
	return ascending || descending
}

func isPalindrome(s string) bool {
	n := len(s)
	for i := 0; i < n/2; i++ {
		if s[i] != s[n-1-i] {
			return false
		}
	}
	return true
}

// isRepeater XYZXYZ, без полностью одинаковых цифр
func isRepeater(s string) bool {
	n := len(s)
	if n%2 != 0 || isSolid(s) {
		return false
	}
	half := n / 2
	return s[:half] == s[half:]
}
