package shell

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Component renders the subtree mounted under the host anchor.
type Component interface {
	Render() (*html.Node, error)
}

// RootFactory constructs the root component. It runs on every Start.
type RootFactory func() (Component, error)

// TemplateComponent renders an html/template whose output is a single
// top-level element.
type TemplateComponent struct {
	Template *template.Template
	Data     any
}

func (c TemplateComponent) Render() (*html.Node, error) {
	if c.Template == nil {
		return nil, errors.New("root template missing")
	}
	var buf bytes.Buffer
	if err := c.Template.Execute(&buf, c.Data); err != nil {
		return nil, fmt.Errorf("execute root template: %w", err)
	}

	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(&buf, parent)
	if err != nil {
		return nil, fmt.Errorf("parse root fragment: %w", err)
	}

	var root *html.Node
	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
			if root != nil {
				return nil, errors.New("root template must produce a single element")
			}
			root = n
		case html.TextNode:
			if len(bytes.TrimSpace([]byte(n.Data))) > 0 {
				return nil, errors.New("root template has text outside its element")
			}
		}
	}
	if root == nil {
		return nil, errors.New("root template produced no element")
	}
	return root, nil
}
