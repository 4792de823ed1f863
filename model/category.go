package model

import (
	"fmt"
	"strings"
)

// Category identifies the kind of Markdown construct an Element represents.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryHeading
	CategoryTable
	CategoryList
	CategoryListItem
	CategoryBlockquote
	CategoryCodeBlock
	CategoryInlineCode
	CategorySeparator
	CategoryCheckbox
	CategoryLink
	CategoryImage
	CategoryBold
	CategoryEmphasis
	CategoryStrikethrough
	CategoryFootnote
	CategoryMath
)

func (c Category) String() string {
	switch c {
	case CategoryHeading:
		return "Heading"
	case CategoryTable:
		return "Table"
	case CategoryList:
		return "List"
	case CategoryListItem:
		return "ListItem"
	case CategoryBlockquote:
		return "Blockquote"
	case CategoryCodeBlock:
		return "CodeBlock"
	case CategoryInlineCode:
		return "InlineCode"
	case CategorySeparator:
		return "Separator"
	case CategoryCheckbox:
		return "Checkbox"
	case CategoryLink:
		return "Link"
	case CategoryImage:
		return "Image"
	case CategoryBold:
		return "Bold"
	case CategoryEmphasis:
		return "Emphasis"
	case CategoryStrikethrough:
		return "Strikethrough"
	case CategoryFootnote:
		return "Footnote"
	case CategoryMath:
		return "Math"
	default:
		return "Unknown"
	}
}

// IsBlock reports whether the category is a block-level construct. Block
// elements participate in containment queries; inline elements do not.
func (c Category) IsBlock() bool {
	switch c {
	case CategoryHeading, CategoryTable, CategoryList, CategoryListItem,
		CategoryBlockquote, CategoryCodeBlock, CategorySeparator, CategoryCheckbox:
		return true
	}
	return false
}

// Categories returns all element categories in declaration order.
func Categories() []Category {
	return []Category{
		CategoryHeading,
		CategoryTable,
		CategoryList,
		CategoryListItem,
		CategoryBlockquote,
		CategoryCodeBlock,
		CategoryInlineCode,
		CategorySeparator,
		CategoryCheckbox,
		CategoryLink,
		CategoryImage,
		CategoryBold,
		CategoryEmphasis,
		CategoryStrikethrough,
		CategoryFootnote,
		CategoryMath,
	}
}

// ParseCategory returns the category named by s. Matching is
// case-insensitive. An unrecognized name returns an error.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("unknown category %q", s)
}
