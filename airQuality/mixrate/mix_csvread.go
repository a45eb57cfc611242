package mixrate

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV 读取AQI测量CSV: 首行为表头, 其余行全部按float解析
// 输出契约: 三条等长序列(时间/室内/室外), 按行序排列
func LoadCSV(path, tlabel, xlabel, ylabel string) (Series, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("open csv: %w", err)
	}
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	if err != nil {
		return Series{}, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return Series{}, fmt.Errorf("empty csv: %s", path)
	}

	header := rows[0]
	data := make(map[string][]float64, len(header))
	for _, item := range header {
		data[item] = make([]float64, 0, len(rows)-1)
	}
	for _, row := range rows[1:] {
		for n := range header {
			v, err := strconv.ParseFloat(row[n], 64)
			if err != nil {
				return Series{}, fmt.Errorf("parse csv cell %q: %w", row[n], err)
			}
			data[header[n]] = append(data[header[n]], v)
		}
	}

	for _, label := range []string{tlabel, xlabel, ylabel} {
		if _, ok := data[label]; !ok {
			return Series{}, &ColumnMissingError{Label: label, Path: path}
		}
	}
	return Series{T: data[tlabel], X: data[xlabel], Y: data[ylabel]}, nil
}
