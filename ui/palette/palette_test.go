package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grid-snake/game/board"
)

func TestCellColor(t *testing.T) {
	tests := []struct {
		cell board.Cell
		want Color
	}{
		{board.Empty, White},
		{board.SnakeHead, Red},
		{board.SnakeBody, Green},
		{board.Food, Blue},
		{board.Cell(200), Black},
	}

	for _, tt := range tests {
		t.Run(tt.cell.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CellColor(tt.cell))
		})
	}
}
