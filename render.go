package main

import (
	"fmt"

	"github.com/bismuthsalamander/beacongap/gapgo"
	"github.com/gdamore/tcell/v2"
)

var (
	coveredStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	sensorStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	gapStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle  = tcell.StyleDefault.Reverse(true)
)

// mapScale is the number of lattice points per cell along each axis needed to
// fit the square into a w by h area.
func mapScale(dimension int32, w, h int) int32 {
	side := int32(min(w, h))
	if side < 1 {
		return dimension + 1
	}
	return (dimension + side) / side
}

// drawMap renders the square scaled down to fit the screen, leaving the last
// row for a status line. A cell is covered when its top-left point is.
func drawMap(screen tcell.Screen, sensors []gapgo.Sensor, dimension int32, gap *gapgo.Vec2) {
	screen.Clear()
	w, h := screen.Size()
	if h < 2 || w < 1 {
		return
	}
	scale := mapScale(dimension, w, h-1)
	cells := int(dimension/scale) + 1

	for cy := 0; cy < cells && cy < h-1; cy++ {
		for cx := 0; cx < cells && cx < w; cx++ {
			p := gapgo.Vec2{X: int32(cx) * scale, Y: int32(cy) * scale}
			for _, s := range sensors {
				if s.Covers(p) {
					screen.SetContent(cx, cy, '.', nil, coveredStyle)
					break
				}
			}
		}
	}
	for _, s := range sensors {
		if s.Pos.X < 0 || s.Pos.Y < 0 || s.Pos.X > dimension || s.Pos.Y > dimension {
			continue
		}
		screen.SetContent(int(s.Pos.X/scale), int(s.Pos.Y/scale), 'S', nil, sensorStyle)
	}
	status := fmt.Sprintf(" D=%d scale=%d sensors=%d", dimension, scale, len(sensors))
	if gap != nil {
		screen.SetContent(int(gap.X/scale), int(gap.Y/scale), '#', nil, gapStyle)
		status += fmt.Sprintf(" gap %v", *gap)
	}
	status += "  q to quit "
	for i, r := range status {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, statusStyle)
	}
}

// showMap opens the terminal and keeps the map on screen until the user
// quits.
func showMap(sensors []gapgo.Sensor, dimension int32, gap *gapgo.Vec2) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	drawMap(screen, sensors, dimension, gap)
	screen.Show()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			drawMap(screen, sensors, dimension, gap)
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case nil:
			return nil
		}
	}
}
