package Controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReceiptForSelectedItems(t *testing.T) {
	r, _, _ := setupTestRouter()

	// Grilled Salmon (1800) + Caesar Salad (850)
	w := doJSON(t, r, "POST", "/receipts", map[string]interface{}{
		"item_ids": []uint64{1, 3},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "KES 2,650", data["total"])

	lines := data["lines"].([]interface{})
	assert.Len(t, lines, 2)
	first := lines[0].(map[string]interface{})
	assert.Equal(t, "Grilled Salmon", first["name"])
	assert.Equal(t, "KES 1,800", first["price"])

	info := data["receipt_info"].(map[string]interface{})
	number := info["number"].(string)
	assert.True(t, strings.HasPrefix(number, "RCP/"), "got %q", number)
}

func TestReceiptNumbersIncrement(t *testing.T) {
	r, _, _ := setupTestRouter()

	w1 := doJSON(t, r, "POST", "/receipts", map[string]interface{}{"item_ids": []uint64{1}})
	w2 := doJSON(t, r, "POST", "/receipts", map[string]interface{}{"item_ids": []uint64{2}})
	assert.Equal(t, http.StatusCreated, w1.Code)
	assert.Equal(t, http.StatusCreated, w2.Code)

	n1 := decodeData(t, w1)["receipt_info"].(map[string]interface{})["number"].(string)
	n2 := decodeData(t, w2)["receipt_info"].(map[string]interface{})["number"].(string)
	assert.NotEqual(t, n1, n2)
	assert.True(t, strings.HasSuffix(n1, "000001"))
	assert.True(t, strings.HasSuffix(n2, "000002"))
}

func TestReceiptRequiresAtLeastOneItem(t *testing.T) {
	r, _, _ := setupTestRouter()

	w := doJSON(t, r, "POST", "/receipts", map[string]interface{}{"item_ids": []uint64{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceiptUnknownItemIs404(t *testing.T) {
	r, _, _ := setupTestRouter()

	w := doJSON(t, r, "POST", "/receipts", map[string]interface{}{"item_ids": []uint64{1, 999}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "999")
}
