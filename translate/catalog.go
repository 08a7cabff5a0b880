package translate

import (
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Japanese messages, keyed by their en-US format.
var catalogJa = map[string]string{
	"command invalid":                 "不正なコマンド",
	"segment invalid":                 "不正なセグメント",
	"segment not writable":            "書き込みできないセグメント",
	"operator invalid":                "不正な演算子",
	"arguments missing":               "引数が足りません",
	"excessive arguments":             "引数が多すぎます",
	"index out of range":              "インデックスが範囲外です",
	"unit name missing":               "ユニット名がありません",
	"line %d '%v' %v":                 "%d 行目 '%v' %v",
	"'%v' is not an index":            "'%v' はインデックスではありません",
	"'%v' is not a number":            "'%v' は数値ではありません",
	"'%v' is not a valid unit":        "'%v' は有効なユニット名ではありません",
	"tick limit %d exceeded":          "ティック上限 %d を超えました",
	"label duplicated":                "ラベルが重複しています",
	"symbol invalid":                  "不正なシンボル",
	"computation invalid":             "不正な計算式",
	"destination invalid":             "不正な格納先",
	"jump invalid":                    "不正なジャンプ",
	"address out of range":            "アドレスが範囲外です",
	"$(%v) is not a valid expression": "$(%v) は有効な式ではありません",
	"pc out of range":                 "PC が範囲外です",
	"rom full":                        "ROM が一杯です",
	"value out of range":              "値が範囲外です",
	"Pointers (tick %d)":              "ポインタ (ティック %d)",
	"Temp":                            "一時領域",
	"Stack":                           "スタック",
	"Address":                         "アドレス",
	"Value":                           "値",
}

func registerCatalog() {
	for key, msg := range catalogJa {
		err := message.SetString(language.Japanese, key, msg)
		if err != nil {
			log.Printf("hackvm: catalog: %v: %v", key, err)
		}
	}
}
