package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bottle-counter/internal/domain/entity"
)

// LoadParams читает параметры детекции из текстового файла "key = value".
// Отсутствующий или битый файл даёт параметры по умолчанию.
func LoadParams(path string) entity.Params {
	params := entity.DefaultParams()

	f, err := os.Open(path)
	if err != nil {
		return params
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "min_radius":
			if v, err := strconv.Atoi(value); err == nil {
				params.MinRadius = v
			}
		case "max_radius":
			if v, err := strconv.Atoi(value); err == nil {
				params.MaxRadius = v
			}
		case "min_distance":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				params.MinDistance = v
			}
		case "param1":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				params.Param1 = v
			}
		case "param2":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				params.Param2 = v
			}
		case "method":
			if m, err := entity.ParseMethod(value); err == nil {
				params.Method = m
			}
		}
	}

	return params
}

// SaveParams записывает параметры детекции в текстовый файл "key = value".
func SaveParams(path string, params entity.Params) error {
	var b strings.Builder
	fmt.Fprintf(&b, "min_radius = %d\n", params.MinRadius)
	fmt.Fprintf(&b, "max_radius = %d\n", params.MaxRadius)
	fmt.Fprintf(&b, "min_distance = %s\n", formatFloat(params.MinDistance))
	fmt.Fprintf(&b, "param1 = %s\n", formatFloat(params.Param1))
	fmt.Fprintf(&b, "param2 = %s\n", formatFloat(params.Param2))
	fmt.Fprintf(&b, "method = %s\n", params.Method)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save params: %w", err)
	}
	return nil
}

// formatFloat печатает число без потери точности при обратном чтении
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
