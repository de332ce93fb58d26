package postgres

import (
	"fmt"
	"strconv"
	"strings"
)

func stringIDToInt(stringID string) (int, error) {
	idStr := strings.TrimPrefix(stringID, "u")
	return strconv.Atoi(idStr)
}

func intToStringID(id int) string {
	return fmt.Sprintf("u%d", id)
}
