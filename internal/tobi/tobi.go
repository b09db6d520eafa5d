// Package tobi реализует выбор ответов чат-бота Тоби на сообщения гостей.
//
// Селектор — это классификатор с фиксированным порядком приоритетов, а не
// полноценный NLP: VIP-приветствие, чистое приветствие, поиск позиций меню,
// общий вопрос о меню, просьба о рекомендации, вопрос о ценах, ответ по умолчанию.
package tobi

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/mmeshcher/restaurant-system/internal/menu"
	"github.com/mmeshcher/restaurant-system/internal/model"
)

// responses содержит шаблонные ответы Тоби по категориям.
var responses = map[string][]string{
	"greeting": {
		"Hey dude! Welcome to The Common House! What can I get ya today?",
		"Yo! Stoked you're here bro! Ready to order some killer food?",
		"Hey there! Tobi here, ready to hook you up with some tasty grub!",
	},
	"menu": {
		"Our menu is totally rad! We got everything from Truffle Fries to Lobster Mac. What sounds good to you?",
		"Bro, we've got the sickest menu! Check out our starters, mains, desserts, and drinks!",
	},
	"order": {
		"Awesome choice dude! I'll get that order in for ya!",
		"Sweet! That's gonna be delicious, bro!",
	},
	"vip": {
		"Whoa! Welcome VIP! You're getting the royal treatment today my friend!",
		"Dude, YELP REVIEWER! You're gonna love this place bro, I'll make sure everything's perfect!",
	},
	"default": {
		"Right on! Anything else I can help you with?",
		"Cool cool! What else can I do for ya?",
		"For sure! Let me know if you need anything else!",
	},
}

var surferAdjectives = []string{"rad", "killer", "awesome", "sick", "gnarly", "stellar", "epic"}

var popularItems = []string{
	"The Short Rib Pappardelle is insane bro - super popular!",
	"Can't go wrong with our House Smash Burger - it's a crowd favorite!",
	"The Truffle Fries are a total hit, dude!",
	"Everyone loves the Lobster Mac & Cheese - it's next level!",
}

const priceSummary = "Our prices are super fair dude! Starters are around $11-16, " +
	"mains are $16-32, and drinks are $11-14. Want to see the full menu?"

// foodMappings сопоставляет ключевые слова запроса с терминами,
// встречающимися в названиях и описаниях блюд (варианты и множественное число).
var foodMappings = map[string][]string{
	"burger":   {"burger", "burgers"},
	"pasta":    {"pappardelle", "spaghetti", "mac"},
	"fish":     {"salmon", "cod"},
	"chicken":  {"chicken"},
	"steak":    {"steak", "sirloin"},
	"fries":    {"fries", "frite"},
	"salad":    {"cobb"},
	"cocktail": {"martini", "negroni", "margarita", "fashioned", "sour"},
	"dessert":  {"torte", "cake", "pudding"},
}

var greetingWords = []string{"hi", "hello", "hey", "sup", "yo"}

var menuPhrases = []string{"menu", "what do you have", "what do you serve"}

var recommendWords = []string{"recommend", "suggest", "best", "popular"}

var priceWords = []string{"price", "cost", "how much", "expensive"}

// Match описывает найденную позицию меню вместе с её категорией.
type Match struct {
	Category string
	Item     model.MenuItem
}

// Selector выбирает шаблонный ответ Тоби по сообщению гостя.
type Selector struct {
	categories []menu.Category
	rnd        *rand.Rand
}

// NewSelector создаёт селектор ответов для указанного каталога меню.
// Если rnd равен nil, создаётся собственный источник случайности.
func NewSelector(categories []menu.Category, rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{
		categories: categories,
		rnd:        rnd,
	}
}

// FindMenuItems ищет позиции меню, соответствующие запросу гостя.
// Порядок результата повторяет порядок обхода каталога: категории в фиксированном
// порядке, внутри категории — порядок позиций. Дедупликация не выполняется.
func (s *Selector) FindMenuItems(query string) []Match {
	queryLower := strings.ToLower(query)

	var keywords []string
	for _, w := range strings.Fields(queryLower) {
		if len(w) > 3 {
			keywords = append(keywords, strings.TrimRight(w, "s?!.,"))
		}
	}

	var matches []Match
	for _, cat := range s.categories {
		for _, item := range cat.Items {
			nameLower := strings.ToLower(item.Name)
			descLower := strings.ToLower(item.Description)

			// Прямое вхождение: запрос в названии, название в запросе или запрос в описании.
			if strings.Contains(nameLower, queryLower) || strings.Contains(queryLower, nameLower) {
				matches = append(matches, Match{Category: cat.Name, Item: item})
				continue
			}
			if strings.Contains(descLower, queryLower) {
				matches = append(matches, Match{Category: cat.Name, Item: item})
				continue
			}

			for _, kw := range keywords {
				if terms, ok := foodMappings[kw]; ok {
					if anyTermIn(terms, nameLower, descLower) {
						matches = append(matches, Match{Category: cat.Name, Item: item})
						break
					}
				} else if strings.Contains(nameLower, kw) || strings.Contains(descLower, kw) {
					matches = append(matches, Match{Category: cat.Name, Item: item})
					break
				}
			}
		}
	}

	return matches
}

func anyTermIn(terms []string, nameLower, descLower string) bool {
	for _, term := range terms {
		if strings.Contains(nameLower, term) || strings.Contains(descLower, term) {
			return true
		}
	}
	return false
}

// SelectResponse возвращает ответ Тоби на сообщение гостя.
// VIP-признак имеет абсолютный приоритет и игнорирует содержимое сообщения.
func (s *Selector) SelectResponse(message string, isVIP bool) string {
	if isVIP {
		return s.pick(responses["vip"])
	}

	messageLower := strings.ToLower(message)

	// Приветствие срабатывает только на короткие сообщения: длинная фраза
	// с "hey" внутри должна уйти в поиск по меню.
	words := strings.Fields(messageLower)
	if len(words) <= 3 {
		for _, w := range words {
			if slices.Contains(greetingWords, w) {
				return s.pick(responses["greeting"])
			}
		}
	}

	if matches := s.FindMenuItems(message); len(matches) > 0 {
		return s.describeMatches(matches)
	}

	if containsAny(messageLower, menuPhrases) {
		return s.pick(responses["menu"])
	}

	if containsAny(messageLower, recommendWords) {
		return s.pick(popularItems)
	}

	if containsAny(messageLower, priceWords) {
		return priceSummary
	}

	return s.pick(responses["default"])
}

// Prompt строит промпт для внешнего генератора текста: личность Тоби,
// полное меню в качестве контекста и сообщение гостя.
func (s *Selector) Prompt(message, restaurantName string, isVIP bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are Tobi, a super chill surfer dude who works at %s.\n", restaurantName)
	b.WriteString("You're laid-back, friendly, and use casual surfer language (dude, bro, rad, sick, gnarly, etc).\n")
	b.WriteString("\nOur Menu:\n")

	for _, cat := range s.categories {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(cat.Name))
		for _, item := range cat.Items {
			fmt.Fprintf(&b, "- %s: %s ($%.2f)\n", item.Name, item.Description, item.Price)
		}
	}

	if isVIP {
		b.WriteString("\nIMPORTANT: This customer is a VIP! Be extra friendly and enthusiastic!")
	}
	b.WriteString("\n\nRespond to the customer in 1-2 short sentences. Keep it casual and fun!")
	fmt.Fprintf(&b, "\n\nCustomer: %s\nTobi:", message)

	return b.String()
}

func (s *Selector) describeMatches(matches []Match) string {
	if len(matches) == 1 {
		item := matches[0].Item
		adj := s.pick(surferAdjectives)
		return fmt.Sprintf(
			"Oh dude, the %s is %s! It's %s - totally worth the $%.2f. Want me to add it to your order?",
			item.Name, adj, item.Description, item.Price,
		)
	}

	names := make([]string, 0, 3)
	for _, m := range matches {
		names = append(names, m.Item.Name)
		if len(names) == 3 {
			break
		}
	}

	if len(names) == 2 {
		return fmt.Sprintf(
			"Nice! We've got %s and %s. Both are super tasty bro! Which one sounds good?",
			names[0], names[1],
		)
	}

	return fmt.Sprintf(
		"Dude, we've got %s, %s, and %s! All of them are awesome. What are you feeling?",
		names[0], names[1], names[2],
	)
}

func (s *Selector) pick(list []string) string {
	return list[s.rnd.Intn(len(list))]
}

func containsAny(text string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
