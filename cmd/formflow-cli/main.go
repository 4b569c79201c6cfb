package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	formflow "github.com/goliatone/go-formflow"
	"github.com/goliatone/go-formflow/components/cities"
	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/format"
	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/submit"
	"github.com/goliatone/go-formflow/pkg/suggest"
)

const defaultQuery = "header=Создание объявления&city=Город&street=Улица&number_phone=Телефон&price=Цена"

func main() {
	query := flag.String("query", defaultQuery, "launch query string describing the form")
	configPath := flag.String("config", "", "optional YAML policy file")
	flag.Parse()

	ctx := context.Background()

	opts := []formflow.SessionOption{}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		cfg, err := form.LoadConfig(data)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		opts = append(opts, formflow.WithConfig(cfg))
	}

	fallback, err := submit.NewFallbackTransport(os.Stdout)
	if err != nil {
		log.Fatalf("build transport: %v", err)
	}
	opts = append(opts,
		formflow.WithTransport(fallback),
		formflow.WithSource(schema.FieldCity, cities.SuggestSource()),
	)

	session := formflow.NewFromQuery(*query, opts...)
	defer session.Close()
	if session.LoadFailed() {
		log.Fatalf("%s", form.LoadFailedMessage)
	}

	formSchema := session.Schema()
	if formSchema.Title != "" {
		fmt.Println(formSchema.Title)
	}

	cityList, err := cities.DefaultCities()
	if err != nil {
		log.Fatalf("load city list: %v", err)
	}

	for _, field := range formSchema.Fields {
		value, err := promptField(session, field, cityList)
		if err != nil {
			log.Fatalf("prompt %s: %v", field.ID, err)
		}
		session.Update(field.ID, value)
	}

	for {
		result := session.Submit(ctx)
		if !result.Validation.Valid {
			fmt.Println(result.Validation.Message)
			field, ok := formSchema.Field(result.Validation.FailingField)
			if !ok {
				log.Fatalf("unknown failing field %q", result.Validation.FailingField)
			}
			value, err := promptField(session, field, cityList)
			if err != nil {
				log.Fatalf("prompt %s: %v", field.ID, err)
			}
			session.Update(field.ID, value)
			continue
		}
		if result.Outcome.Err != nil {
			log.Fatalf("%s", submit.RetryMessage)
		}
		fmt.Printf("Отправлено (%s)\n", result.Outcome.Transport)
		return
	}
}

func promptField(session *formflow.Session, field schema.FieldSpec, cityList []string) (string, error) {
	message := field.Label
	if message == "" {
		message = field.ID
	}

	switch field.Kind {
	case schema.KindFixedChoice:
		var out string
		prompt := &survey.Select{Message: message, Options: field.Choices}
		if err := survey.AskOne(prompt, &out); err != nil {
			return "", err
		}
		return out, nil
	case schema.KindCity:
		var out string
		prompt := &survey.Input{
			Message: message,
			Default: session.Value(field.ID),
			Suggest: func(toComplete string) []string {
				matches := suggest.Rank(toComplete, cityList)
				if len(matches) > 7 {
					matches = matches[:7]
				}
				labels := make([]string, 0, len(matches))
				for _, match := range matches {
					labels = append(labels, match.Label)
				}
				return labels
			},
		}
		if err := survey.AskOne(prompt, &out); err != nil {
			return "", err
		}
		return out, nil
	case schema.KindPhone:
		var out string
		prompt := &survey.Input{Message: message, Default: session.Value(field.ID)}
		validator := func(answer any) error {
			raw, _ := answer.(string)
			if raw == "" && !field.Required {
				return nil
			}
			if !format.PhoneComplete(format.Phone(raw)) {
				return errors.New("введите номер из 11 цифр")
			}
			return nil
		}
		if err := survey.AskOne(prompt, &out, survey.WithValidator(validator)); err != nil {
			return "", err
		}
		return out, nil
	default:
		var out string
		prompt := &survey.Input{Message: message, Default: session.Value(field.ID)}
		if err := survey.AskOne(prompt, &out); err != nil {
			return "", err
		}
		return out, nil
	}
}
