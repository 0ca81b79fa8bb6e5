package quickdraw

// Challenge is one picture with four possible names.
type Challenge struct {
	Emoji   string
	Options [4]string
	Correct int // index into Options
}

// Answer returns the correct option.
func (c Challenge) Answer() string {
	return c.Options[c.Correct]
}

// Challenges is the full picture pool.
var Challenges = []Challenge{
	{Emoji: "🍎", Options: [4]string{"Apple", "Orange", "Banana", "Grape"}, Correct: 0},
	{Emoji: "🐶", Options: [4]string{"Cat", "Dog", "Bird", "Fish"}, Correct: 1},
	{Emoji: "🚗", Options: [4]string{"Bike", "Car", "Boat", "Plane"}, Correct: 1},
	{Emoji: "🌙", Options: [4]string{"Sun", "Star", "Moon", "Cloud"}, Correct: 2},
	{Emoji: "⚽", Options: [4]string{"Basketball", "Soccer", "Tennis", "Baseball"}, Correct: 1},
	{Emoji: "🍕", Options: [4]string{"Burger", "Pizza", "Taco", "Sushi"}, Correct: 1},
	{Emoji: "🎸", Options: [4]string{"Piano", "Drums", "Guitar", "Violin"}, Correct: 2},
	{Emoji: "🌳", Options: [4]string{"Flower", "Tree", "Grass", "Bush"}, Correct: 1},
	{Emoji: "📱", Options: [4]string{"Phone", "Computer", "Tablet", "Watch"}, Correct: 0},
	{Emoji: "🏠", Options: [4]string{"Office", "School", "House", "Store"}, Correct: 2},
	{Emoji: "🐱", Options: [4]string{"Dog", "Cat", "Rabbit", "Mouse"}, Correct: 1},
	{Emoji: "🍌", Options: [4]string{"Apple", "Banana", "Orange", "Grape"}, Correct: 1},
	{Emoji: "✈️", Options: [4]string{"Car", "Boat", "Plane", "Train"}, Correct: 2},
	{Emoji: "☀️", Options: [4]string{"Moon", "Star", "Sun", "Cloud"}, Correct: 2},
	{Emoji: "🏀", Options: [4]string{"Soccer", "Basketball", "Football", "Tennis"}, Correct: 1},
	{Emoji: "🍔", Options: [4]string{"Pizza", "Burger", "Hotdog", "Taco"}, Correct: 1},
	{Emoji: "🎹", Options: [4]string{"Guitar", "Piano", "Drums", "Flute"}, Correct: 1},
	{Emoji: "🌸", Options: [4]string{"Tree", "Flower", "Grass", "Leaf"}, Correct: 1},
	{Emoji: "💻", Options: [4]string{"Phone", "Tablet", "Computer", "Watch"}, Correct: 2},
	{Emoji: "🏫", Options: [4]string{"House", "School", "Office", "Mall"}, Correct: 1},
	{Emoji: "🐟", Options: [4]string{"Bird", "Fish", "Snake", "Turtle"}, Correct: 1},
	{Emoji: "🍊", Options: [4]string{"Apple", "Banana", "Orange", "Lemon"}, Correct: 2},
	{Emoji: "🚲", Options: [4]string{"Car", "Bike", "Scooter", "Bus"}, Correct: 1},
	{Emoji: "⭐", Options: [4]string{"Moon", "Sun", "Star", "Planet"}, Correct: 2},
	{Emoji: "🎾", Options: [4]string{"Golf", "Tennis", "Badminton", "Squash"}, Correct: 1},
	{Emoji: "🌮", Options: [4]string{"Burger", "Pizza", "Taco", "Burrito"}, Correct: 2},
	{Emoji: "🥁", Options: [4]string{"Guitar", "Piano", "Drums", "Trumpet"}, Correct: 2},
	{Emoji: "🌿", Options: [4]string{"Tree", "Flower", "Grass", "Plant"}, Correct: 2},
	{Emoji: "⌚", Options: [4]string{"Phone", "Watch", "Clock", "Timer"}, Correct: 1},
	{Emoji: "🏢", Options: [4]string{"House", "School", "Office", "Hotel"}, Correct: 2},
}
