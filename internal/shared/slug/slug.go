// Package slug はタイトル文字列からURLセーフなスラッグを生成します。
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics はNFD分解で結合文字（アクセント記号等）を除去するトランスフォーマーです。
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify はタイトルをURLスラッグに変換します。
// 決定的な純粋関数で、同じタイトルからは常に同じスラッグが生成されます。
// 変換ルール:
//   - 小文字化
//   - ダイアクリティカルマーク（é → e など）を除去
//   - 英数字以外の連続をハイフン1つに置換
//   - 先頭・末尾のハイフンを除去
//
// 例: "this is a blog post" → "this-is-a-blog-post"
func Slugify(title string) string {
	normalized, _, err := transform.String(stripDiacritics, title)
	if err != nil {
		// 変換不能なバイト列はそのまま後段のフィルタに任せる
		normalized = title
	}

	var b strings.Builder
	b.Grow(len(normalized))

	pendingHyphen := false
	for _, r := range strings.ToLower(normalized) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			// 区切り文字の連続はハイフン1つに潰す。先頭のハイフンは書かない
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}
