package i18n

import "testing"

func TestTranslateEnglish(t *testing.T) {
	c, err := Load("en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.Translate("contextmenu.global.copy"); got != "Copy" {
		t.Fatalf("expected Copy, got %q", got)
	}
	if got := c.Translate("contextmenu.image.textWrapType.upDown"); got != "Up and down" {
		t.Fatalf("expected nested key, got %q", got)
	}
}

func TestTranslateChinese(t *testing.T) {
	c, err := Load("zh-CN")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.Translate("contextmenu.global.copy"); got != "复制" {
		t.Fatalf("expected 复制, got %q", got)
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	c, err := Load("xx-YY")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Locale() != "en" {
		t.Fatalf("expected en fallback, got %q", c.Locale())
	}
	if got := c.Translate("contextmenu.global.paste"); got != "Paste" {
		t.Fatalf("expected Paste, got %q", got)
	}
}

func TestMissingKeyIsEmpty(t *testing.T) {
	c, err := Load("en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.Translate("contextmenu.nope"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported("zh-cn") || Supported("fr") {
		t.Fatalf("unexpected support table %v", Locales())
	}
}
