// Package nodelink renders a maze's passage graph as a node-link diagram.
//
// # Overview
//
// Every cell becomes a node pinned at its grid position and every open
// passage an undirected edge. A perfect maze therefore draws as a spanning
// tree of the grid; loops created by a braided carve can be highlighted.
//
// # Usage
//
// Convert a grid to DOT, then render it with Graphviz:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Loops: report.Loops})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # DOT Format
//
// The generated DOT sets pos="x,y!" on every node and must be laid out with
// neato (or another engine that honors pinned positions). [RenderSVG] and
// [RenderPNG] select neato automatically.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
