package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"title":       "タイトル",
	"description": "説明",
	"term":        "単語",
	"cards":       "カード",
	"quality":     "評価",
	"content":     "本文",
	"lang":        "言語",
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// --- ここからが日本語化の処理 ---

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldLabel(fe))
			return t
		})
	}
	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("oneof", "{0}はjpかzhを指定してください。")

	// min/max は文字列・配列・数値でメッセージを分ける
	registerBound := func(tag, str, slice, num string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-string", str, true); err != nil {
				return err
			}
			if err := ut.Add(tag+"-items", slice, true); err != nil {
				return err
			}
			return ut.Add(tag+"-number", num, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-number"
			switch fe.Kind() {
			case reflect.String:
				key = tag + "-string"
			case reflect.Slice, reflect.Array, reflect.Map:
				key = tag + "-items"
			}
			t, _ := ut.T(key, fieldLabel(fe), fe.Param())
			return t
		})
	}
	registerBound("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}件以上指定してください。", "{0}は{1}以上で指定してください。")
	registerBound("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}件以下で指定してください。", "{0}は{1}以下で指定してください。")
}

// fieldLabel は jsonタグ名を日本語の項目名に置き換える。マップにない場合はそのまま
func fieldLabel(fe validator.FieldError) string {
	if label, ok := fieldNameTranslations[fe.Field()]; ok {
		return label
	}
	return fe.Field()
}
